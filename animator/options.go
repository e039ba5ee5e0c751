package animator

import (
	"go.uber.org/zap"

	"github.com/smasonuk/matrixcube/rain"
)

// ResizeSource tells an animator its surface changed size.
type ResizeSource interface {
	ObserveResize(fn func()) (disconnect func())
}

type settings struct {
	logger *zap.Logger
	theme  rain.Theme
	seed   uint64
	clock  Clock
	resize ResizeSource
}

// Option configures a mounted animator.
type Option func(*settings)

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithTheme(t rain.Theme) Option {
	return func(s *settings) { s.theme = t }
}

// WithSeed fixes the random stream of the canvas rain.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = seed }
}

func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithResize(r ResizeSource) Option {
	return func(s *settings) { s.resize = r }
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: zap.NewNop(),
		theme:  rain.DefaultTheme,
		seed:   1,
		clock:  NewSystemClock(),
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// ResizeSignal is a ResizeSource fired by hand.
type ResizeSignal struct {
	nextID int
	subs   map[int]func()
}

func (r *ResizeSignal) ObserveResize(fn func()) func() {
	if r.subs == nil {
		r.subs = make(map[int]func())
	}
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Fire notifies every observer.
func (r *ResizeSignal) Fire() {
	for id := 0; id < r.nextID; id++ {
		if fn, ok := r.subs[id]; ok {
			fn()
		}
	}
}

// Observers reports how many observers are attached.
func (r *ResizeSignal) Observers() int {
	return len(r.subs)
}
