// Command matrixcube opens a window with the rain canvas and an ASCII cube overlay.
//
// Keys: Esc quits, A toggles the overlay, R toggles reduced motion.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube"
	"github.com/smasonuk/matrixcube/internal/config"
	"github.com/smasonuk/matrixcube/internal/logger"
)

func main() {
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

	tier := cfg.Tier(matrixcube.DetectLocalQualityTier)
	logger.Info("starting",
		zap.String("tier", string(tier)),
		zap.Bool("reducedMotion", cfg.Motion.ReducedMotion),
	)

	g := newGame(cfg, tier)
	defer g.close()

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Display.TPS > 0 {
		ebiten.SetTPS(cfg.Display.TPS)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", zap.Error(err))
	}
}
