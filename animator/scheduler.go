package animator

import (
	"slices"
	"time"
)

// FrameID identifies a pending frame callback. Zero is never issued.
type FrameID uint64

// FrameScheduler runs callbacks on the next frame, like requestAnimationFrame.
// Timestamps are milliseconds on the scheduler's clock.
type FrameScheduler interface {
	RequestFrame(fn func(ts float64)) FrameID
	CancelFrame(id FrameID)
}

// Ticker is a FrameScheduler driven by an external loop calling Tick once per frame.
// Callbacks requested during a Tick run on the following Tick.
type Ticker struct {
	next    FrameID
	order   []FrameID
	pending map[FrameID]func(float64)
}

func NewTicker() *Ticker {
	return &Ticker{pending: make(map[FrameID]func(float64))}
}

func (t *Ticker) RequestFrame(fn func(float64)) FrameID {
	t.next++
	t.pending[t.next] = fn
	t.order = append(t.order, t.next)
	return t.next
}

func (t *Ticker) CancelFrame(id FrameID) {
	delete(t.pending, id)
}

// Tick runs the batch of callbacks pending when it was called and returns how many ran.
func (t *Ticker) Tick(ts float64) int {
	batch := t.order
	t.order = nil
	ran := 0
	for _, id := range batch {
		fn, ok := t.pending[id]
		if !ok {
			continue
		}
		delete(t.pending, id)
		fn(ts)
		ran++
	}
	return ran
}

// Pending reports how many callbacks are waiting.
func (t *Ticker) Pending() int {
	return len(t.pending)
}

// IDs returns the pending frame ids in request order.
func (t *Ticker) IDs() []FrameID {
	return slices.DeleteFunc(slices.Clone(t.order), func(id FrameID) bool {
		_, ok := t.pending[id]
		return !ok
	})
}

// Clock reports monotonic milliseconds.
type Clock interface {
	NowMs() float64
}

// SystemClock counts from its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() SystemClock {
	return SystemClock{start: time.Now()}
}

func (c SystemClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// FrameGate drops frames that arrive sooner than the target interval.
type FrameGate struct {
	interval float64
	last     float64
	started  bool
}

// NewFrameGate targets fps frames per second.
func NewFrameGate(fps float64) *FrameGate {
	if fps <= 0 {
		fps = 60
	}
	return &FrameGate{interval: 1000 / fps}
}

func (g *FrameGate) Interval() float64 {
	return g.interval
}

// Reset forgets the last frame. The next Step always passes.
func (g *FrameGate) Reset() {
	g.started = false
	g.last = 0
}

// Step reports whether a frame at ts should draw and how many milliseconds
// passed since the last drawn frame. The first frame reports one interval.
func (g *FrameGate) Step(ts float64) (elapsed float64, ok bool) {
	elapsed = g.interval
	if g.started {
		elapsed = ts - g.last
	}
	if elapsed < g.interval {
		return elapsed, false
	}
	g.started = true
	g.last = ts
	return elapsed, true
}
