package activity

// Signal is a push-driven boolean. It satisfies VisibilitySource and, through
// ReducedMotionSignal, MotionSource. Signals are not safe for concurrent use.
type Signal struct {
	value  bool
	nextID int
	subs   map[int]func(bool)
}

func NewSignal(initial bool) *Signal {
	return &Signal{value: initial, subs: make(map[int]func(bool))}
}

func (s *Signal) Value() bool {
	return s.value
}

// Set stores v and notifies subscribers if it changed.
func (s *Signal) Set(v bool) {
	if s.value == v {
		return
	}
	s.value = v
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(v)
		}
	}
}

func (s *Signal) Subscribe(fn func(bool)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Signal) Visible() bool {
	return s.value
}

// ReducedMotionSignal adapts a Signal holding the reduced-motion preference.
type ReducedMotionSignal struct {
	*Signal
}

func (r ReducedMotionSignal) ReducedMotion() bool {
	return r.value
}

// SignalIntersection treats a Signal as the in-view state of every target.
// Useful where the host knows visibility directly, like a minimized window.
type SignalIntersection struct {
	*Signal
}

func (s SignalIntersection) Observe(_ Target, _ Options, fn func(bool)) func() {
	fn(s.value)
	return s.Subscribe(fn)
}
