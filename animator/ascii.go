package animator

import (
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube/ascii"
)

// Container is the element the ASCII grid is fitted to.
type Container interface {
	Size() (width, height float64)
}

// TextSink receives each rendered frame.
type TextSink interface {
	SetText(s string)
}

// ASCIIAnimator renders the text cube into a TextSink.
type ASCIIAnimator struct {
	container Container
	sink      TextSink
	sched     FrameScheduler
	set       settings
	log       *zap.Logger

	rt        Runtime
	profile   ascii.Profile
	grid      ascii.Size
	params    ascii.Params
	gate      *FrameGate
	startedAt float64
	seconds   float64
	text      string

	state   State
	raf     FrameID
	mounted bool
	closed  bool

	disconnect func()
}

// MountASCII fits the grid to container, draws the resting pose and then
// starts or parks the loop according to rt. Without a container or sink the
// returned animator is inert.
func MountASCII(container Container, sink TextSink, sched FrameScheduler, rt Runtime, opts ...Option) *ASCIIAnimator {
	a := &ASCIIAnimator{
		container: container,
		sink:      sink,
		sched:     sched,
		set:       newSettings(opts),
	}
	a.log = a.set.logger.Named("ascii")
	a.mount(rt)
	return a
}

func (a *ASCIIAnimator) mount(rt Runtime) {
	a.rt = rt
	a.profile = ascii.ProfileFor(rt.QualityTier)
	a.grid = ascii.DefaultSize
	a.params = ascii.ParamsFor(a.grid, a.profile)
	a.gate = NewFrameGate(a.profile.TargetFPS)
	a.startedAt = a.set.clock.NowMs()
	a.seconds = 0
	a.state = StateStopped

	if a.container == nil || a.sink == nil || a.sched == nil {
		a.log.Debug("no text target")
		return
	}
	a.mounted = true
	a.fit()
	a.drawAt(0)
	if a.set.resize != nil {
		a.disconnect = a.set.resize.ObserveResize(a.Resize)
	}
	a.log.Debug("mounted",
		zap.String("tier", string(rt.QualityTier)),
		zap.Int("cols", a.grid.Cols),
		zap.Int("rows", a.grid.Rows),
	)

	switch {
	case rt.ReducedMotion:
		a.RenderStatic()
	case rt.IsActive:
		a.Start()
	}
}

func (a *ASCIIAnimator) fit() {
	width, height := a.container.Size()
	a.grid = ascii.GridSize(width, max(ascii.MinContainerHeight, height), a.profile)
	a.params = ascii.ParamsFor(a.grid, a.profile)
}

func (a *ASCIIAnimator) drawAt(seconds float64) {
	a.seconds = seconds
	a.text = ascii.Render(a.params, ascii.RotationAt(seconds), a.grid)
	a.sink.SetText(a.text)
}

func (a *ASCIIAnimator) Mounted() bool {
	return a.mounted && !a.closed
}

func (a *ASCIIAnimator) State() State {
	return a.state
}

// Grid is the current grid size.
func (a *ASCIIAnimator) Grid() ascii.Size {
	return a.grid
}

// Text is the last frame handed to the sink.
func (a *ASCIIAnimator) Text() string {
	return a.text
}

func (a *ASCIIAnimator) Start() {
	if !a.Mounted() || a.state == StateRunning {
		return
	}
	a.state = StateRunning
	a.gate.Reset()
	a.raf = a.sched.RequestFrame(a.step)
	a.log.Debug("start")
}

func (a *ASCIIAnimator) Stop() {
	if !a.Mounted() {
		return
	}
	wasRunning := a.state == StateRunning
	a.state = StateStopped
	a.gate.Reset()
	if a.raf != 0 {
		a.sched.CancelFrame(a.raf)
	}
	a.raf = 0
	if wasRunning {
		a.log.Debug("stop")
	}
}

// RenderStatic stops the loop and shows the resting pose.
func (a *ASCIIAnimator) RenderStatic() {
	if !a.Mounted() {
		return
	}
	a.Stop()
	a.drawAt(0)
	a.state = StateStatic
	a.log.Debug("static frame")
}

func (a *ASCIIAnimator) step(ts float64) {
	a.raf = 0
	if a.state != StateRunning || a.closed {
		return
	}
	if _, ok := a.gate.Step(ts); ok {
		a.drawAt((ts - a.startedAt) / 1000)
	}
	a.raf = a.sched.RequestFrame(a.step)
}

// Resize refits the grid and redraws the current pose.
func (a *ASCIIAnimator) Resize() {
	if !a.Mounted() {
		return
	}
	prev := a.grid
	a.fit()
	if a.grid != prev {
		a.log.Debug("resize", zap.Int("cols", a.grid.Cols), zap.Int("rows", a.grid.Rows))
	}
	a.drawAt(a.seconds)
}

// Apply reacts to a new runtime. A tier change remounts; otherwise reduced
// motion wins, then activity, and an inactive overlay stops with its last frame.
func (a *ASCIIAnimator) Apply(rt Runtime) {
	if a.closed {
		return
	}
	prev := a.rt
	if rt.QualityTier != prev.QualityTier {
		a.teardown()
		a.closed = false
		a.mounted = false
		a.mount(rt)
		return
	}
	a.rt = rt
	if rt.IsActive == prev.IsActive && rt.ReducedMotion == prev.ReducedMotion {
		return
	}
	applyActivity(a, rt, a.Stop)
}

func (a *ASCIIAnimator) Close() {
	if a.closed {
		return
	}
	a.teardown()
	a.log.Debug("closed")
}

func (a *ASCIIAnimator) teardown() {
	a.Stop()
	if a.disconnect != nil {
		a.disconnect()
		a.disconnect = nil
	}
	a.closed = true
}

var _ Controls = (*ASCIIAnimator)(nil)
