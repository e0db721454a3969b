// Package blog implements blog-post CRUD with the author-only
// policy: only the post's author may update or delete it.
package blog

import (
	"context"
	"errors"

	"github.com/quillhq/quill/internal/domain/blog"
)

var ErrNotAuthor = errors.New("requester is not the post author")

type Usecase struct {
	posts blog.Repo
}

func NewUsecase(posts blog.Repo) *Usecase {
	return &Usecase{posts: posts}
}

func (u *Usecase) List(ctx context.Context) ([]blog.Post, error) {
	return u.posts.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id int64) (*blog.Post, error) {
	return u.posts.GetByID(ctx, id)
}

func (u *Usecase) Create(ctx context.Context, authorID int64, title, content string) (*blog.Post, error) {
	p := &blog.Post{Title: title, Content: content, AuthorID: authorID}
	if err := u.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, requesterID, id int64, title, content string) error {
	p, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != requesterID {
		return ErrNotAuthor
	}
	p.Title = title
	p.Content = content
	return u.posts.Update(ctx, p)
}

func (u *Usecase) Delete(ctx context.Context, requesterID, id int64) error {
	p, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != requesterID {
		return ErrNotAuthor
	}
	return u.posts.Delete(ctx, id)
}
