package httpapi

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quillhq/quill/internal/domain/user"
	"github.com/quillhq/quill/internal/services/auth"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() fieldErrors {
	fe := fieldErrors{}
	if len(r.Name) < 3 {
		fe["name"] = "name must be at least 3 characters"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fe["email"] = "invalid email"
	}
	if len(r.Password) < 6 {
		fe["password"] = "password must be at least 6 characters"
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fe := req.validate(); fe != nil {
		return validationError(c, fe)
	}
	if err := s.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() fieldErrors {
	fe := fieldErrors{}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fe["email"] = "invalid email"
	}
	if len(r.Password) < 6 {
		fe["password"] = "password must be at least 6 characters"
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fe := req.validate(); fe != nil {
		return validationError(c, fe)
	}
	rec, access, refresh, err := s.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Message:      "logged in successfully",
	})
}

func (s *Server) handleRefreshToken(c echo.Context) error {
	raw := c.QueryParam("refreshToken")
	if raw == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}
	access, err := s.auth.Refresh(c.Request().Context(), raw)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"accessToken": access})
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleLogout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}
	if err := s.auth.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

type resetPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (s *Server) handleResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := s.auth.ResetPassword(c.Request().Context(), requesterID(c), req.OldPassword, req.NewPassword)
	if err != nil {
		// Every reset failure is a 400: weak password, missing user
		// and old-password mismatch alike.
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid new password format")
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, "incorrect password")
		default:
			return s.mapError(err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated successfully"})
}

func (s *Server) handleListUsers(c echo.Context) error {
	users, err := s.users.List(c.Request().Context())
	if err != nil {
		return s.mapError(err)
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

func (s *Server) handleGetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := s.users.Get(c.Request().Context(), id)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": toUserResponse(rec)})
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleUpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rec, err := s.users.Update(c.Request().Context(), requesterID(c), id, req.Name, req.Email)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User updated successfully",
		"user":    toUserResponse(rec),
	})
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := s.users.Delete(c.Request().Context(), requesterID(c), id)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User deleted successfully",
		"user":    toUserResponse(rec),
	})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
