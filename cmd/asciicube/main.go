// Command asciicube spins the ASCII cube in a terminal.
//
// Keys: q or Esc quits, r toggles reduced motion.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube"
	"github.com/smasonuk/matrixcube/activity"
	"github.com/smasonuk/matrixcube/animator"
	"github.com/smasonuk/matrixcube/internal/config"
	"github.com/smasonuk/matrixcube/internal/logger"
)

// Terminal cells are treated as 9x18 pixel boxes when fitting the grid.
const (
	cellWidth  = 9
	cellHeight = 18
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// The terminal belongs to the cube, so logs only go to a file.
	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	v := newViewer(screen, cfg, cfg.Tier(matrixcube.DetectLocalQualityTier))
	defer v.close()
	v.run()
}

type viewer struct {
	screen tcell.Screen
	tier   matrixcube.QualityTier
	style  tcell.Style
	dim    tcell.Style
	log    *zap.Logger

	start   time.Time
	ticker  *animator.Ticker
	resize  *animator.ResizeSignal
	focused *activity.Signal
	reduced *activity.Signal
	monitor *activity.Monitor
	anim    *animator.ASCIIAnimator

	text  string
	dirty bool
}

func newViewer(screen tcell.Screen, cfg *config.Config, tier matrixcube.QualityTier) *viewer {
	theme := cfg.RainTheme()
	v := &viewer{
		screen:  screen,
		tier:    tier,
		style:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(theme.Brand.R), int32(theme.Brand.G), int32(theme.Brand.B))),
		dim:     tcell.StyleDefault.Foreground(tcell.ColorGray),
		log:     logger.Named("asciicube"),
		start:   time.Now(),
		ticker:  animator.NewTicker(),
		resize:  &animator.ResizeSignal{},
		focused: activity.NewSignal(true),
		reduced: activity.NewSignal(cfg.Motion.ReducedMotion),
	}
	v.monitor = activity.Watch(nil, activity.Options{}, activity.Providers{
		Visibility: v.focused,
		Motion:     activity.ReducedMotionSignal{Signal: v.reduced},
	})
	v.anim = animator.MountASCII(v, v, v.ticker, v.runtime(v.monitor.State()),
		animator.WithLogger(v.log),
		animator.WithClock(v),
		animator.WithResize(v.resize),
	)
	v.monitor.OnChange(func(st activity.State) {
		v.anim.Apply(v.runtime(st))
	})
	return v
}

func (v *viewer) runtime(st activity.State) animator.Runtime {
	return animator.Runtime{
		IsActive:      st.IsActive,
		QualityTier:   v.tier,
		ReducedMotion: st.ReducedMotion,
	}
}

func (v *viewer) NowMs() float64 {
	return float64(time.Since(v.start)) / float64(time.Millisecond)
}

// Size leaves the bottom row for the status line.
func (v *viewer) Size() (float64, float64) {
	cols, rows := v.screen.Size()
	return float64(cols * cellWidth), float64(max(0, rows-1) * cellHeight)
}

func (v *viewer) SetText(text string) {
	v.text = text
	v.dirty = true
}

func (v *viewer) run() {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	frames := time.NewTicker(time.Second / 60)
	defer frames.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-frames.C:
			v.ticker.Tick(v.NowMs())
		case <-sig:
			return
		}
		if v.dirty {
			v.draw()
		}
	}
}

// handle reports false when the viewer should exit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			v.reduced.Set(!v.reduced.Value())
			v.dirty = true
		}
	case *tcell.EventFocus:
		v.focused.Set(ev.Focused)
		v.dirty = true
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize.Fire()
		v.dirty = true
	}
	return true
}

func (v *viewer) draw() {
	v.dirty = false
	v.screen.Clear()
	cols, rows := v.screen.Size()

	y := 0
	x := 0
	for _, r := range v.text {
		if r == '\n' {
			y++
			x = 0
			continue
		}
		if x < cols && y < rows-1 {
			v.screen.SetContent(x, y, r, nil, v.style)
		}
		x++
	}

	st := v.monitor.State()
	status := fmt.Sprintf(" q quit  r reduced motion  tier %s  %s ", v.tier, v.anim.State())
	if st.ReducedMotion {
		status += " reduced "
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, rows-1, r, nil, v.dim)
	}
	v.screen.Show()
}

func (v *viewer) close() {
	v.anim.Close()
	v.monitor.Close()
}
