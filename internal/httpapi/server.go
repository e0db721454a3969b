// Package httpapi exposes the REST surface under /api/v1. The
// middleware pipeline is composed once at startup, in order:
// recover, request log, metrics, security headers, CORS, rate
// limit, then per-route auth.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/quillhq/quill/internal/obs"
	authsvc "github.com/quillhq/quill/internal/services/auth"
	blogsvc "github.com/quillhq/quill/internal/services/blog"
	usersvc "github.com/quillhq/quill/internal/services/user"
)

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Options struct {
	Logger    *zap.Logger
	Auth      *authsvc.Usecase
	Users     *usersvc.Usecase
	Blogs     *blogsvc.Usecase
	Tokens    *authsvc.TokenManager
	RateLimit RateLimit

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Server struct {
	echo   *echo.Echo
	log    *zap.Logger
	auth   *authsvc.Usecase
	users  *usersvc.Usecase
	blogs  *blogsvc.Usecase
	tokens *authsvc.TokenManager

	srv *http.Server
}

func NewServer(o Options) *Server {
	log := o.Logger
	if log == nil {
		log, _ = zap.NewProduction()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		log:    log,
		auth:   o.Auth,
		users:  o.Users,
		blogs:  o.Blogs,
		tokens: o.Tokens,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(obs.HTTPMetrics())
	e.Use(middleware.Secure())
	e.Use(middleware.CORS())
	if o.RateLimit.Requests > 0 && o.RateLimit.Window > 0 {
		e.Use(rateLimiter(o.RateLimit))
	}

	s.routes()

	s.srv = &http.Server{
		Handler:      e,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		IdleTimeout:  o.IdleTimeout,
	}
	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleRoot)

	api := s.echo.Group("/api/v1")

	u := api.Group("/user")
	u.POST("/register", s.handleRegister)
	u.POST("/login", s.handleLogin)
	u.GET("/refresh-token", s.handleRefreshToken)
	u.POST("/reset-password", s.handleResetPassword, s.requireAuth)
	u.GET("/all", s.handleListUsers)
	u.GET("/:id", s.handleGetUser)
	u.PUT("/:id", s.handleUpdateUser, s.requireAuth)
	u.DELETE("/:id", s.handleDeleteUser, s.requireAuth)
	u.POST("/logout", s.handleLogout, s.requireAuth)

	b := api.Group("/blog")
	b.GET("/blog-posts", s.handleListPosts)
	b.GET("/blog-posts/:id", s.handleGetPost)
	b.POST("/blog-posts", s.handleCreatePost, s.requireAuth)
	b.PUT("/blog-posts/:id", s.handleUpdatePost, s.requireAuth)
	b.DELETE("/blog-posts/:id", s.handleDeletePost, s.requireAuth)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) Start(addr string) error {
	s.srv.Addr = addr
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// rateLimiter allows Requests per Window per client IP. The token
// bucket refills continuously, approximating the fixed window.
func rateLimiter(rl RateLimit) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rl.Requests) / rl.Window.Seconds()),
			Burst:     rl.Requests,
			ExpiresIn: rl.Window,
		}),
	})
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Working fine"})
}
