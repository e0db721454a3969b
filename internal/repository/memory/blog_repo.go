package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quillhq/quill/internal/domain/blog"
)

var _ blog.Repo = (*BlogRepo)(nil)

type BlogRepo struct {
	mu     sync.RWMutex
	nextID int64
	posts  map[int64]*blog.Post
	users  *UserRepo
}

// NewBlogRepo takes the user repo so reads can denormalize the
// author name the way the SQL join does.
func NewBlogRepo(users *UserRepo) *BlogRepo {
	return &BlogRepo{nextID: 1, posts: make(map[int64]*blog.Post), users: users}
}

func (r *BlogRepo) Create(ctx context.Context, p *blog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.nextID++
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	r.mu.RLock()
	p, ok := r.posts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, blog.ErrNotFound
	}
	cp := *p
	r.fillAuthor(ctx, &cp)
	return &cp, nil
}

func (r *BlogRepo) List(ctx context.Context) ([]blog.Post, error) {
	r.mu.RLock()
	out := make([]blog.Post, 0, len(r.posts))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.posts[id]; ok {
			out = append(out, *p)
		}
	}
	r.mu.RUnlock()

	for i := range out {
		r.fillAuthor(ctx, &out[i])
	}
	return out, nil
}

func (r *BlogRepo) Update(_ context.Context, p *blog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[p.ID]
	if !ok {
		return blog.ErrNotFound
	}
	stored.Title = p.Title
	stored.Content = p.Content
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *BlogRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return blog.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *BlogRepo) fillAuthor(ctx context.Context, p *blog.Post) {
	if r.users == nil {
		return
	}
	if u, err := r.users.GetByID(ctx, p.AuthorID); err == nil {
		p.AuthorName = u.Name
	}
}
