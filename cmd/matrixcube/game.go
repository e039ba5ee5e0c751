package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube"
	"github.com/smasonuk/matrixcube/activity"
	"github.com/smasonuk/matrixcube/animator"
	"github.com/smasonuk/matrixcube/internal/config"
	"github.com/smasonuk/matrixcube/internal/logger"
	"github.com/smasonuk/matrixcube/rain"
)

type game struct {
	cfg   *config.Config
	tier  matrixcube.QualityTier
	theme rain.Theme
	log   *zap.Logger

	width, height int
	start         time.Time
	ticker        *animator.Ticker
	resize        *animator.ResizeSignal
	resized       bool

	focused *activity.Signal
	shown   *activity.Signal
	reduced *activity.Signal
	monitor *activity.Monitor

	canvas  *windowCanvas
	overlay *overlay
	rain    *animator.CanvasAnimator
	ascii   *animator.ASCIIAnimator

	showOverlay bool
}

func newGame(cfg *config.Config, tier matrixcube.QualityTier) *game {
	g := &game{
		cfg:         cfg,
		tier:        tier,
		theme:       cfg.RainTheme(),
		log:         logger.Named("game"),
		width:       cfg.Display.Width,
		height:      cfg.Display.Height,
		start:       time.Now(),
		ticker:      animator.NewTicker(),
		resize:      &animator.ResizeSignal{},
		focused:     activity.NewSignal(true),
		shown:       activity.NewSignal(true),
		reduced:     activity.NewSignal(cfg.Motion.ReducedMotion),
		showOverlay: true,
	}
	g.canvas = &windowCanvas{g: g}
	g.overlay = &overlay{g: g}
	return g
}

// NowMs is the clock shared by the ticker and the ASCII animator.
func (g *game) NowMs() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}

// Rect is the window in its own coordinates.
func (g *game) Rect() activity.Rect {
	return activity.Rect{W: float64(g.width), H: float64(g.height)}
}

func (g *game) runtime(st activity.State) animator.Runtime {
	return animator.Runtime{
		IsActive:      st.IsActive,
		QualityTier:   g.tier,
		ReducedMotion: st.ReducedMotion,
		RenderCube:    animator.Bool(g.cfg.Motion.RenderCube),
	}
}

// mount runs on the first Update, once ebiten can allocate images.
func (g *game) mount() {
	g.monitor = activity.Watch(g, activity.Options{}, activity.Providers{
		Intersection: activity.SignalIntersection{Signal: g.shown},
		Visibility:   g.focused,
		Motion:       activity.ReducedMotionSignal{Signal: g.reduced},
	})
	rt := g.runtime(g.monitor.State())
	opts := []animator.Option{
		animator.WithLogger(g.log),
		animator.WithTheme(g.theme),
		animator.WithClock(g),
		animator.WithResize(g.resize),
		animator.WithSeed(uint64(g.start.UnixNano())),
	}

	g.overlay.allocate()
	g.rain = animator.MountCanvas(g.canvas, g.ticker, rt, opts...)
	g.ascii = animator.MountASCII(g.overlay, g.overlay, g.ticker, rt, opts...)
	g.monitor.OnChange(func(st activity.State) {
		g.log.Debug("activity", zap.Bool("active", st.IsActive), zap.Bool("reduced", st.ReducedMotion))
		rt := g.runtime(st)
		g.rain.Apply(rt)
		g.ascii.Apply(rt)
	})
}

func (g *game) Update() error {
	if g.monitor == nil {
		g.mount()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reduced.Set(!g.reduced.Value())
	}

	g.focused.Set(ebiten.IsFocused())
	g.shown.Set(!ebiten.IsWindowMinimized())

	if g.resized {
		g.resized = false
		g.overlay.allocate()
		g.resize.Fire()
	}
	g.ticker.Tick(g.NowMs())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background.Alpha(1))
	if img, scale := g.canvas.image(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1/scale, 1/scale)
		screen.DrawImage(img, op)
	}
	if g.showOverlay {
		if img := g.overlay.image(); img != nil {
			screen.DrawImage(img, nil)
		}
	}
	if g.cfg.Logging.Level == "debug" {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  tier: %s  t: %0.2f", ebiten.ActualFPS(), g.tier, g.rainTime()))
	}
}

func (g *game) rainTime() float64 {
	if g.rain == nil {
		return 0
	}
	return g.rain.Time()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = g.monitor != nil
	}
	return g.width, g.height
}

func (g *game) close() {
	if g.rain != nil {
		g.rain.Close()
	}
	if g.ascii != nil {
		g.ascii.Close()
	}
	if g.monitor != nil {
		g.monitor.Close()
	}
	g.canvas.dispose()
	g.overlay.dispose()
}
