package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/quillhq/quill/internal/domain/user"
	"github.com/quillhq/quill/internal/repository/memory"
	"github.com/quillhq/quill/internal/services/user"
)

func seedUsers(t *testing.T) (*user.Usecase, *domain.User, *domain.User) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewUserRepo()
	ada := &domain.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, ada))
	bob := &domain.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, bob))
	return user.NewUsecase(repo), ada, bob
}

func TestListAndGet(t *testing.T) {
	uc, ada, _ := seedUsers(t)
	ctx := context.Background()

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := uc.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = uc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSelfOnly(t *testing.T) {
	uc, ada, bob := seedUsers(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, bob.ID, ada.ID, "Eve", "")
	assert.ErrorIs(t, err, user.ErrNotSelf)

	got, err := uc.Update(ctx, ada.ID, ada.ID, "Ada Lovelace", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestDeleteSelfOnly(t *testing.T) {
	uc, ada, bob := seedUsers(t)
	ctx := context.Background()

	_, err := uc.Delete(ctx, bob.ID, ada.ID)
	assert.ErrorIs(t, err, user.ErrNotSelf)

	deleted, err := uc.Delete(ctx, ada.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", deleted.Name)

	_, err = uc.Get(ctx, ada.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
