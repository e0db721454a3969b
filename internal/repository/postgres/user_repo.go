package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quillhq/quill/internal/domain/user"
)

var _ user.Repo = (*UserRepo)(nil)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const (
	qUserInsert = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, refresh_token, created_at, updated_at;`

	qUserByID = `
SELECT id, name, email, password_hash, refresh_token, created_at, updated_at
FROM users
WHERE id = $1;`

	qUserByEmail = `
SELECT id, name, email, password_hash, refresh_token, created_at, updated_at
FROM users
WHERE email = $1;`

	qUserByRefreshToken = `
SELECT id, name, email, password_hash, refresh_token, created_at, updated_at
FROM users
WHERE refresh_token = $1;`

	qUserList = `
SELECT id, name, email, password_hash, refresh_token, created_at, updated_at
FROM users
ORDER BY id;`

	qUserUpdate = `
UPDATE users
SET name       = $2,
    email      = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING id, name, email, password_hash, refresh_token, created_at, updated_at;`

	qUserUpdatePassword = `
UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1;`

	qUserSetRefreshToken = `
UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1;`

	qUserDelete = `
DELETE FROM users WHERE id = $1;`
)

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.Pool.QueryRow(ctx, qUserInsert, u.Name, u.Email, u.Password)
	if err := scanUser(row, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("user insert: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u user.User
	if err := scanUser(r.db.Pool.QueryRow(ctx, qUserByID, id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u user.User
	if err := scanUser(r.db.Pool.QueryRow(ctx, qUserByEmail, email), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByRefreshToken(ctx context.Context, token string) (*user.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u user.User
	if err := scanUser(r.db.Pool.QueryRow(ctx, qUserByRefreshToken, token), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qUserList)
	if err != nil {
		return nil, fmt.Errorf("user list: %w", err)
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var u user.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Update(ctx context.Context, u *user.User) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.Pool.QueryRow(ctx, qUserUpdate, u.ID, u.Name, u.Email)
	if err := scanUser(row, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qUserUpdatePassword, id, hash)
	if err != nil {
		return fmt.Errorf("user update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepo) SetRefreshToken(ctx context.Context, id int64, token *string) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qUserSetRefreshToken, id, token)
	if err != nil {
		return fmt.Errorf("user set refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qUserDelete, id)
	if err != nil {
		return fmt.Errorf("user delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row, out *user.User) error {
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Password,
		&out.RefreshToken, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrNotFound
		}
		return fmt.Errorf("scan user: %w", err)
	}
	return nil
}
