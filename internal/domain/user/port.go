package user

import "context"

type Repo interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByRefreshToken(ctx context.Context, token string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// SetRefreshToken overwrites the stored refresh token; nil clears it.
	SetRefreshToken(ctx context.Context, id int64, token *string) error
	Delete(ctx context.Context, id int64) error
}
