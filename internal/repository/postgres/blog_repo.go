package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quillhq/quill/internal/domain/blog"
)

var _ blog.Repo = (*BlogRepo)(nil)

type BlogRepo struct {
	db *DB
}

func NewBlogRepo(db *DB) *BlogRepo { return &BlogRepo{db: db} }

const (
	qPostInsert = `
INSERT INTO blog_posts (title, content, author_id)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at;`

	qPostByID = `
SELECT p.id, p.title, p.content, p.author_id, u.name, p.created_at, p.updated_at
FROM blog_posts p
JOIN users u ON u.id = p.author_id
WHERE p.id = $1;`

	qPostList = `
SELECT p.id, p.title, p.content, p.author_id, u.name, p.created_at, p.updated_at
FROM blog_posts p
JOIN users u ON u.id = p.author_id
ORDER BY p.id;`

	qPostUpdate = `
UPDATE blog_posts
SET title      = $2,
    content    = $3,
    updated_at = NOW()
WHERE id = $1;`

	qPostDelete = `
DELETE FROM blog_posts WHERE id = $1;`
)

func (r *BlogRepo) Create(ctx context.Context, p *blog.Post) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if err := r.db.Pool.QueryRow(ctx, qPostInsert, p.Title, p.Content, p.AuthorID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("post insert: %w", err)
	}
	return nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var p blog.Post
	if err := scanPost(r.db.Pool.QueryRow(ctx, qPostByID, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepo) List(ctx context.Context) ([]blog.Post, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qPostList)
	if err != nil {
		return nil, fmt.Errorf("post list: %w", err)
	}
	defer rows.Close()

	var out []blog.Post
	for rows.Next() {
		var p blog.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *BlogRepo) Update(ctx context.Context, p *blog.Post) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qPostUpdate, p.ID, p.Title, p.Content)
	if err != nil {
		return fmt.Errorf("post update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func (r *BlogRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qPostDelete, id)
	if err != nil {
		return fmt.Errorf("post delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row, out *blog.Post) error {
	if err := row.Scan(&out.ID, &out.Title, &out.Content, &out.AuthorID,
		&out.AuthorName, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.ErrNotFound
		}
		return fmt.Errorf("scan post: %w", err)
	}
	return nil
}
