// Package activity decides whether an animated surface should be running.
//
// A surface is active when it is in view, its page is visible and the user
// has not asked for reduced motion. Each input comes from an injected source
// so the same logic runs against a browser-like host, a desktop window or a test.
package activity

// State is the live activity record of one surface.
type State struct {
	IsActive      bool `json:"isActive"`
	IsInView      bool `json:"isInView"`
	IsPageVisible bool `json:"isPageVisible"`
	ReducedMotion bool `json:"reducedMotion"`
}

// Derive builds a State from its three inputs.
func Derive(inView, pageVisible, reducedMotion bool) State {
	return State{
		IsActive:      inView && pageVisible && !reducedMotion,
		IsInView:      inView,
		IsPageVisible: pageVisible,
		ReducedMotion: reducedMotion,
	}
}

// Options tune intersection observation. A nil Threshold means
// DefaultThreshold; zero means any overlap counts as in view.
type Options struct {
	RootMargin string
	Threshold  *float64
}

// Float returns a pointer to v, for Options.Threshold.
func Float(v float64) *float64 {
	return &v
}

const (
	DefaultRootMargin = "0px"
	DefaultThreshold  = 0.2
)

func (o Options) withDefaults() Options {
	if o.RootMargin == "" {
		o.RootMargin = DefaultRootMargin
	}
	if o.Threshold == nil {
		o.Threshold = Float(DefaultThreshold)
	}
	return o
}

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) area() float64 {
	return max(0, r.W) * max(0, r.H)
}

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Target is an element whose position can be observed.
type Target interface {
	Rect() Rect
}

// IntersectionSource reports whether target is in view. fn is called on every change.
type IntersectionSource interface {
	Observe(target Target, opts Options, fn func(inView bool)) (disconnect func())
}

// VisibilitySource reports whether the hosting page or window is visible.
type VisibilitySource interface {
	Visible() bool
	Subscribe(fn func(visible bool)) (unsubscribe func())
}

// MotionSource reports the reduced-motion preference.
type MotionSource interface {
	ReducedMotion() bool
	Subscribe(fn func(reduced bool)) (unsubscribe func())
}

// Providers bundles the sources a Monitor reads. Any of them may be nil.
type Providers struct {
	Intersection IntersectionSource
	Visibility   VisibilitySource
	Motion       MotionSource
}
