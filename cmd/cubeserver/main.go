// Command cubeserver serves cube frames over HTTP and a websocket.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube"
	"github.com/smasonuk/matrixcube/internal/config"
	"github.com/smasonuk/matrixcube/internal/logger"
	"github.com/smasonuk/matrixcube/internal/server"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
		os.Exit(1)
	}
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Debug("config loaded", zap.Any("config", cfg))

	if config.SaveRequested() {
		if path, err := cfg.Save(); err != nil {
			logger.Warn("save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	tier := cfg.Tier(matrixcube.DetectLocalQualityTier)
	logger.Info("starting server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("tier", string(tier)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, tier, logger.Named("server"))
	if err := srv.Run(ctx); err != nil {
		stop()
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}
