package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/domain/blog"
	"github.com/quillhq/quill/internal/domain/user"
	authsvc "github.com/quillhq/quill/internal/services/auth"
	blogsvc "github.com/quillhq/quill/internal/services/blog"
	usersvc "github.com/quillhq/quill/internal/services/user"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type postAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type postResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    postAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toPostResponse(p *blog.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    postAuthor{ID: p.AuthorID, Name: p.AuthorName},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// fieldErrors carries per-field validation messages in a 400 body.
type fieldErrors map[string]string

func validationError(c echo.Context, fe fieldErrors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": fe})
}

// mapError is the single place service failures become statuses.
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, authsvc.ErrEmailExists), errors.Is(err, user.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, authsvc.ErrWeakPassword):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid new password format")
	case errors.Is(err, authsvc.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusForbidden, "invalid refresh token")
	case errors.Is(err, usersvc.ErrNotSelf):
		return echo.NewHTTPError(http.StatusForbidden, "cannot modify another user")
	case errors.Is(err, blogsvc.ErrNotAuthor):
		return echo.NewHTTPError(http.StatusForbidden, "only the author may modify this post")
	case errors.Is(err, user.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	case errors.Is(err, blog.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "blog post not found")
	default:
		s.log.Error("internal error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
