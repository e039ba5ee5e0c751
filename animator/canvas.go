package animator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube"
	"github.com/smasonuk/matrixcube/rain"
	"github.com/smasonuk/matrixcube/surface"
)

// Fallback canvas size when the host reports no bounds.
const (
	FallbackWidth  = 900
	FallbackHeight = 520
)

// Canvas is the host element the rain is drawn into.
type Canvas interface {
	// Bounds is the logical size. Zero sides fall back to 900x520.
	Bounds() (width, height float64)
	DevicePixelRatio() float64
	// Allocate returns a surface of the given size, or surface.ErrUnsupported.
	Allocate(width, height, scale float64) (surface.Surface, error)
}

// CanvasAnimator drives a rain.Compositor. Time advances with wall clock,
// not frame count, so playback speed does not depend on the achieved frame rate.
type CanvasAnimator struct {
	canvas Canvas
	sched  FrameScheduler
	set    settings
	log    *zap.Logger

	rt         Runtime
	cfg        matrixcube.CubeConfig
	compositor *rain.Compositor
	gate       *FrameGate

	state   State
	raf     FrameID
	time    float64
	mounted bool
	closed  bool

	disconnect func()
}

// MountCanvas sizes the canvas, draws the first frame and starts or parks the
// loop according to rt. If no drawing surface can be had the returned
// animator is inert.
func MountCanvas(canvas Canvas, sched FrameScheduler, rt Runtime, opts ...Option) *CanvasAnimator {
	a := &CanvasAnimator{
		canvas: canvas,
		sched:  sched,
		set:    newSettings(opts),
	}
	a.log = a.set.logger.Named("canvas")
	a.mount(rt)
	return a
}

func (a *CanvasAnimator) mount(rt Runtime) {
	a.rt = rt
	a.cfg = matrixcube.ResolveCubeConfig(rt.QualityTier)
	a.gate = NewFrameGate(a.cfg.TargetFPS)
	a.compositor = nil
	a.time = 0
	a.state = StateStopped

	if a.canvas == nil || a.sched == nil {
		a.log.Debug("no canvas to draw on")
		return
	}
	if err := a.allocate(); err != nil {
		a.log.Debug("canvas setup aborted", zap.Error(err))
		return
	}
	a.mounted = true
	if a.set.resize != nil {
		a.disconnect = a.set.resize.ObserveResize(a.Resize)
	}
	w, h := a.compositor.Surface().Size()
	a.log.Debug("mounted",
		zap.String("tier", string(rt.QualityTier)),
		zap.Float64("width", w),
		zap.Float64("height", h),
	)

	switch {
	case rt.ReducedMotion:
		a.RenderStatic()
	case rt.IsActive:
		a.Start()
	default:
		a.compositor.Static(rt.renderCube())
	}
}

func (a *CanvasAnimator) allocate() error {
	dpr := matrixcube.ClampDPR(a.canvas.DevicePixelRatio(), a.cfg.MaxDPR)
	width, height := a.canvas.Bounds()
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	dst, err := a.canvas.Allocate(width, height, dpr)
	if err != nil {
		return err
	}
	if dst == nil {
		return surface.ErrUnsupported
	}
	if a.compositor == nil {
		a.compositor = rain.NewCompositor(dst, a.cfg, a.set.theme, a.set.seed)
	} else {
		a.compositor.Reset(dst)
	}
	return nil
}

// Mounted reports whether setup found a drawing surface.
func (a *CanvasAnimator) Mounted() bool {
	return a.mounted && !a.closed
}

func (a *CanvasAnimator) State() State {
	return a.state
}

// Time is the current scene time.
func (a *CanvasAnimator) Time() float64 {
	return a.time
}

// Surface is the surface currently drawn into, nil when not mounted.
func (a *CanvasAnimator) Surface() surface.Surface {
	if a.compositor == nil {
		return nil
	}
	return a.compositor.Surface()
}

func (a *CanvasAnimator) Start() {
	if !a.Mounted() || a.state == StateRunning {
		return
	}
	a.state = StateRunning
	a.gate.Reset()
	a.raf = a.sched.RequestFrame(a.step)
	a.log.Debug("start")
}

func (a *CanvasAnimator) Stop() {
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

// RenderStatic stops the loop and draws the neutral pose at time zero.
func (a *CanvasAnimator) RenderStatic() {
	if !a.Mounted() {
		return
	}
	a.Stop()
	a.compositor.Static(a.rt.renderCube())
	a.state = StateStatic
	a.log.Debug("static frame")
}

func (a *CanvasAnimator) step(ts float64) {
	a.raf = 0
	if a.state != StateRunning || a.closed {
		return
	}
	if elapsed, ok := a.gate.Step(ts); ok {
		delta := rain.ClampDeltaRatio(elapsed)
		a.time += rain.TimeStep * delta
		a.compositor.Frame(a.time, delta, a.rt.renderCube())
	}
	a.raf = a.sched.RequestFrame(a.step)
}

// Resize re-reads the canvas size and redraws at the current time.
func (a *CanvasAnimator) Resize() {
	if !a.Mounted() {
		return
	}
	if err := a.allocate(); err != nil {
		if errors.Is(err, surface.ErrUnsupported) {
			a.log.Debug("resize skipped", zap.Error(err))
		} else {
			a.log.Warn("resize failed", zap.Error(err))
		}
		return
	}
	w, h := a.compositor.Surface().Size()
	a.log.Debug("resize", zap.Float64("width", w), zap.Float64("height", h))
	if a.state == StateStatic {
		a.compositor.Static(a.rt.renderCube())
		return
	}
	a.compositor.Frame(a.time, 1, a.rt.renderCube())
}

// Apply reacts to a new runtime. A tier change remounts; otherwise reduced
// motion wins, then activity, and an inactive canvas shows a static frame.
func (a *CanvasAnimator) Apply(rt Runtime) {
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
	applyActivity(a, rt, a.RenderStatic)
}

// Close cancels the pending frame and stops observing size changes.
func (a *CanvasAnimator) Close() {
	if a.closed {
		return
	}
	a.teardown()
	a.log.Debug("closed")
}

func (a *CanvasAnimator) teardown() {
	a.Stop()
	if a.disconnect != nil {
		a.disconnect()
		a.disconnect = nil
	}
	if a.compositor != nil {
		a.compositor.Dispose()
	}
	a.closed = true
}

var _ Controls = (*CanvasAnimator)(nil)
