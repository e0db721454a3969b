package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillhq/quill/internal/repository/memory"
	"github.com/quillhq/quill/internal/services/auth"
)

func newTestUsecase(t *testing.T) (*auth.Usecase, *memory.UserRepo) {
	t.Helper()
	users := memory.NewUserRepo()
	tokens := auth.NewTokenManager(auth.TokenConfig{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		AccessTTL:     20 * time.Minute,
	})
	return auth.NewUsecase(users, tokens), users
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))
	err := uc.Register(ctx, "Ada Again", "ada@example.com", "secret2")
	assert.ErrorIs(t, err, auth.ErrEmailExists)
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, users := newTestUsecase(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))

	rec, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", rec.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte("secret1")))
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	uc, users := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))

	rec, access, refresh, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "Ada", rec.Name)

	stored, err := users.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, refresh, *stored.RefreshToken)
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	uc, users := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))

	_, _, first, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	rec, _, second, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, second, *stored.RefreshToken)

	// The first session's token no longer refreshes.
	_, err = uc.Refresh(ctx, first)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))

	_, _, _, err := uc.Login(ctx, "ada@example.com", "wrong-pass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, _, err = uc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRequiresStoredToken(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))
	_, _, refresh, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	access, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = uc.Refresh(ctx, "some-token-nobody-holds")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	uc, users := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))
	rec, _, refresh, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, refresh))

	stored, err := users.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshToken)

	// Second logout with the now-invalidated token is a no-op success.
	require.NoError(t, uc.Logout(ctx, refresh))

	// And the token no longer refreshes.
	_, err = uc.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestResetPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "Ada", "ada@example.com", "secret1"))
	rec, _, _, err := uc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	err = uc.ResetPassword(ctx, rec.ID, "secret1", "weakpass")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	err = uc.ResetPassword(ctx, rec.ID, "wrong-old", "Abcdef1!")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.NoError(t, uc.ResetPassword(ctx, rec.ID, "secret1", "Abcdef1!"))

	_, _, _, err = uc.Login(ctx, "ada@example.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, _, _, err = uc.Login(ctx, "ada@example.com", "Abcdef1!")
	assert.NoError(t, err)
}
