package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is the credential record. Password holds the bcrypt hash,
// never the plaintext. RefreshToken is the single active refresh
// token for the account, nil when logged out.
type User struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
