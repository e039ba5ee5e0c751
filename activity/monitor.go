package activity

// Monitor keeps a State current as its sources change.
type Monitor struct {
	inView   bool
	visible  bool
	reduced  bool
	state    State
	handlers []func(State)
	stops    []func()
	closed   bool
}

// Watch starts observing target. Missing providers fall back to in view,
// visible and full motion. With an intersection source the target counts as
// out of view until the source first reports.
func Watch(target Target, opts Options, p Providers) *Monitor {
	m := &Monitor{inView: p.Intersection == nil, visible: true}
	if p.Visibility != nil {
		m.visible = p.Visibility.Visible()
	}
	if p.Motion != nil {
		m.reduced = p.Motion.ReducedMotion()
	}
	m.state = Derive(m.inView, m.visible, m.reduced)

	if p.Intersection != nil && target != nil {
		m.stops = append(m.stops, p.Intersection.Observe(target, opts.withDefaults(), func(in bool) {
			m.inView = in
			m.update()
		}))
	}
	if p.Visibility != nil {
		m.stops = append(m.stops, p.Visibility.Subscribe(func(v bool) {
			m.visible = v
			m.update()
		}))
	}
	if p.Motion != nil {
		m.stops = append(m.stops, p.Motion.Subscribe(func(r bool) {
			m.reduced = r
			m.update()
		}))
	}
	return m
}

func (m *Monitor) update() {
	if m.closed {
		return
	}
	next := Derive(m.inView, m.visible, m.reduced)
	if next == m.state {
		return
	}
	m.state = next
	for _, fn := range m.handlers {
		fn(next)
	}
}

func (m *Monitor) State() State {
	return m.state
}

// OnChange registers fn to run after every state change.
func (m *Monitor) OnChange(fn func(State)) {
	m.handlers = append(m.handlers, fn)
}

// Close detaches from every source. No handler runs afterwards.
func (m *Monitor) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for _, stop := range m.stops {
		stop()
	}
	m.stops = nil
	m.handlers = nil
}
