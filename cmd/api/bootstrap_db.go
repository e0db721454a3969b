package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/config"
	pg "github.com/quillhq/quill/internal/repository/postgres"
)

func initDB(ctx context.Context, cfg *config.Config, l *zap.Logger) (*pg.DB, error) {
	db, err := pg.New(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	l.Info("db connected")
	return db, nil
}
