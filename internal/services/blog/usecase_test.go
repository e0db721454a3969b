package blog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/quillhq/quill/internal/domain/blog"
	"github.com/quillhq/quill/internal/domain/user"
	"github.com/quillhq/quill/internal/repository/memory"
	"github.com/quillhq/quill/internal/services/blog"
)

func newTestUsecase(t *testing.T) (*blog.Usecase, int64, int64) {
	t.Helper()
	ctx := context.Background()
	users := memory.NewUserRepo()
	author := &user.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, author))
	other := &user.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, other))

	return blog.NewUsecase(memory.NewBlogRepo(users)), author.ID, other.ID
}

func TestCreateAndGetPost(t *testing.T) {
	uc, authorID, _ := newTestUsecase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, authorID, "First post", "Hello from the test suite")
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
	assert.Equal(t, authorID, got.AuthorID)
	assert.Equal(t, "Ada", got.AuthorName)
}

func TestUpdateEnforcesAuthorOnly(t *testing.T) {
	uc, authorID, otherID := newTestUsecase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, authorID, "First post", "Hello from the test suite")
	require.NoError(t, err)

	err = uc.Update(ctx, otherID, p.ID, "Hijacked", "Something long enough")
	assert.ErrorIs(t, err, blog.ErrNotAuthor)

	require.NoError(t, uc.Update(ctx, authorID, p.ID, "Edited", "Still long enough here"))
	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)
}

func TestDeleteEnforcesAuthorOnly(t *testing.T) {
	uc, authorID, otherID := newTestUsecase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, authorID, "First post", "Hello from the test suite")
	require.NoError(t, err)

	err = uc.Delete(ctx, otherID, p.ID)
	assert.ErrorIs(t, err, blog.ErrNotAuthor)

	require.NoError(t, uc.Delete(ctx, authorID, p.ID))

	_, err = uc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMutateMissingPost(t *testing.T) {
	uc, authorID, _ := newTestUsecase(t)
	ctx := context.Background()

	err := uc.Update(ctx, authorID, 999, "Title here", "Content long enough")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, authorID, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
