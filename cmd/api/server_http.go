package main

import (
	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/httpapi"
	pg "github.com/quillhq/quill/internal/repository/postgres"
	authsvc "github.com/quillhq/quill/internal/services/auth"
	blogsvc "github.com/quillhq/quill/internal/services/blog"
	usersvc "github.com/quillhq/quill/internal/services/user"
)

func buildAPIServer(cfg *config.Config, logger *zap.Logger, db *pg.DB) *httpapi.Server {
	userRepo := pg.NewUserRepo(db)
	blogRepo := pg.NewBlogRepo(db)

	tokens := authsvc.NewTokenManager(authsvc.TokenConfig{
		AccessSecret:  []byte(cfg.Auth.AccessSecret),
		RefreshSecret: []byte(cfg.Auth.RefreshSecret),
		AccessTTL:     cfg.Auth.AccessTTL,
	})

	return httpapi.NewServer(httpapi.Options{
		Logger: logger,
		Auth:   authsvc.NewUsecase(userRepo, tokens),
		Users:  usersvc.NewUsecase(userRepo),
		Blogs:  blogsvc.NewUsecase(blogRepo),
		Tokens: tokens,
		RateLimit: httpapi.RateLimit{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		},
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})
}
