package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quillhq/quill/internal/config"
	"github.com/quillhq/quill/internal/obs"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting api", zap.String("env", cfg.App.Env), zap.String("addr", cfg.Server.HTTPAddr))

	db, err := initDB(rootCtx, cfg, logger)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	metricsSrv := obs.BootstrapMetricsServer(cfg.Server.MetricsAddr, db.Ping, logger)

	apiSrv := buildAPIServer(cfg, logger, db)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", zap.String("addr", cfg.Server.HTTPAddr))
		errCh <- apiSrv.Start(cfg.Server.HTTPAddr)
	}()

	select {
	case <-rootCtx.Done():
		logger.Info("shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", zap.Error(err))
		}
	}

	shCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()

	_ = apiSrv.Shutdown(shCtx)
	_ = metricsSrv.Shutdown(shCtx)
	logger.Info("bye")
}
