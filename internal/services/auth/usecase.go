// Package auth owns the session lifecycle: registration, login,
// access-token refresh, logout and password reset. Token signing and
// verification live in TokenManager; durable session state is the
// single refresh token stored on the user record.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/quillhq/quill/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet the complexity policy")
	ErrSessionNotFound    = errors.New("no session holds this refresh token")
)

type Usecase struct {
	users  user.Repo
	tokens *TokenManager
}

func NewUsecase(users user.Repo, tokens *TokenManager) *Usecase {
	return &Usecase{users: users, tokens: tokens}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u *Usecase) Register(ctx context.Context, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	newUser := &user.User{Name: name, Email: normalizeEmail(email), Password: string(hash)}
	if err := u.users.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// Login checks credentials, issues both tokens and overwrites the
// stored refresh token, so at most one session is active per user.
func (u *Usecase) Login(ctx context.Context, email, password string) (*user.User, string, string, error) {
	rec, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(password)) != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := u.tokens.IssueAccess(rec.ID)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := u.tokens.IssueRefresh(rec.ID)
	if err != nil {
		return nil, "", "", err
	}
	if err := u.users.SetRefreshToken(ctx, rec.ID, &refresh); err != nil {
		return nil, "", "", fmt.Errorf("persist refresh token: %w", err)
	}
	return rec, access, refresh, nil
}

// Refresh exchanges a stored refresh token for a new access token.
// The refresh token itself is not rotated.
func (u *Usecase) Refresh(ctx context.Context, raw string) (string, error) {
	rec, err := u.users.GetByRefreshToken(ctx, raw)
	if err != nil {
		return "", ErrSessionNotFound
	}
	if _, err := u.tokens.VerifyRefresh(raw); err != nil {
		return "", ErrSessionNotFound
	}
	return u.tokens.IssueAccess(rec.ID)
}

// Logout clears the stored refresh token for whichever user holds
// the presented value. A token no user holds is a no-op success, so
// logging out twice never errors.
func (u *Usecase) Logout(ctx context.Context, raw string) error {
	rec, err := u.users.GetByRefreshToken(ctx, raw)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return err
	}
	return u.users.SetRefreshToken(ctx, rec.ID, nil)
}

func (u *Usecase) ResetPassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if !ValidPassword(newPassword) {
		return ErrWeakPassword
	}
	rec, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, userID, string(hash))
}
