package main

import (
	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/obs"
)

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return obs.NewLogger(cfg.Log.AsLoggerConfig(cfg.App))
}
