// Package user implements the profile controller: public list/get,
// self-only update and delete.
package user

import (
	"context"
	"errors"

	"github.com/quillhq/quill/internal/domain/user"
)

// ErrNotSelf rejects a mutation on someone else's profile.
var ErrNotSelf = errors.New("cannot modify another user's profile")

type Usecase struct {
	users user.Repo
}

func NewUsecase(users user.Repo) *Usecase {
	return &Usecase{users: users}
}

func (u *Usecase) List(ctx context.Context) ([]user.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id int64) (*user.User, error) {
	return u.users.GetByID(ctx, id)
}

// Update lets an authenticated user change their own name and email.
func (u *Usecase) Update(ctx context.Context, requesterID, id int64, name, email string) (*user.User, error) {
	if requesterID != id {
		return nil, ErrNotSelf
	}
	rec, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		rec.Name = name
	}
	if email != "" {
		rec.Email = email
	}
	if err := u.users.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) Delete(ctx context.Context, requesterID, id int64) (*user.User, error) {
	if requesterID != id {
		return nil, ErrNotSelf
	}
	rec, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return rec, nil
}
