package blog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("blog post not found")

// Post is a blog entry. AuthorName is denormalized from the users
// table on reads and never written back.
type Post struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
