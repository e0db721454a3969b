// Package memory holds map-backed implementations of the repository
// ports. They back the unit and HTTP test suites and are handy for
// running the API without postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quillhq/quill/internal/domain/user"
)

var _ user.Repo = (*UserRepo)(nil)

type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*user.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{nextID: 1, users: make(map[int64]*user.User)}
}

func (r *UserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	u.ID = r.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepo) GetByRefreshToken(_ context.Context, token string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	for id, other := range r.users {
		if id != u.ID && other.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	stored.Name = u.Name
	stored.Email = u.Email
	stored.UpdatedAt = time.Now().UTC()
	*u = *stored
	return nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *UserRepo) SetRefreshToken(_ context.Context, id int64, token *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.RefreshToken = token
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
