package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r postRequest) validate() fieldErrors {
	fe := fieldErrors{}
	if len(r.Title) < 3 {
		fe["title"] = "title must be at least 3 characters"
	}
	if len(r.Content) < 10 {
		fe["content"] = "content must be at least 10 characters"
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (s *Server) handleListPosts(c echo.Context) error {
	posts, err := s.blogs.List(c.Request().Context())
	if err != nil {
		return s.mapError(err)
	}
	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetPost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := s.blogs.Get(c.Request().Context(), id)
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, toPostResponse(p))
}

func (s *Server) handleCreatePost(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fe := req.validate(); fe != nil {
		return validationError(c, fe)
	}
	if _, err := s.blogs.Create(c.Request().Context(), requesterID(c), req.Title, req.Content); err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Blog post created successfully"})
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fe := req.validate(); fe != nil {
		return validationError(c, fe)
	}
	if err := s.blogs.Update(c.Request().Context(), requesterID(c), id, req.Title, req.Content); err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Blog post updated successfully"})
}

func (s *Server) handleDeletePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.blogs.Delete(c.Request().Context(), requesterID(c), id); err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Blog post deleted successfully"})
}
