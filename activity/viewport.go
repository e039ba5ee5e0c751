package activity

import (
	"fmt"
	"strconv"
	"strings"
)

// Viewport is an IntersectionSource over a scrollable view. Call Update when
// the view moves or resizes and Refresh when targets move.
type Viewport struct {
	view      Rect
	observers map[int]*observer
	nextID    int
}

type observer struct {
	target    Target
	margins   [4]Margin
	threshold float64
	inView    bool
	fn        func(bool)
}

func NewViewport(view Rect) *Viewport {
	return &Viewport{view: view, observers: make(map[int]*observer)}
}

// Observe reports the initial state right away and again on every change.
func (v *Viewport) Observe(target Target, opts Options, fn func(bool)) func() {
	opts = opts.withDefaults()
	margins, err := ParseRootMargin(opts.RootMargin)
	if err != nil {
		margins, _ = ParseRootMargin(DefaultRootMargin)
	}
	o := &observer{target: target, margins: margins, threshold: max(0, *opts.Threshold), fn: fn}
	id := v.nextID
	v.nextID++
	v.observers[id] = o

	o.inView = v.check(o)
	fn(o.inView)
	return func() { delete(v.observers, id) }
}

func (v *Viewport) Update(view Rect) {
	v.view = view
	v.Refresh()
}

func (v *Viewport) Refresh() {
	for id := 0; id < v.nextID; id++ {
		o, ok := v.observers[id]
		if !ok {
			continue
		}
		if in := v.check(o); in != o.inView {
			o.inView = in
			o.fn(in)
		}
	}
}

// check reports whether at least threshold of the target's area lies inside
// the view grown by the root margin. A zero threshold needs any overlap.
func (v *Viewport) check(o *observer) bool {
	if o.target == nil {
		return false
	}
	t := o.target.Rect()
	top := o.margins[0].resolve(v.view.H)
	right := o.margins[1].resolve(v.view.W)
	bottom := o.margins[2].resolve(v.view.H)
	left := o.margins[3].resolve(v.view.W)
	root := Rect{
		X: v.view.X - left,
		Y: v.view.Y - top,
		W: v.view.W + left + right,
		H: v.view.H + top + bottom,
	}
	hit := t.intersect(root)
	if t.area() == 0 {
		return t.X >= root.X && t.X <= root.X+root.W && t.Y >= root.Y && t.Y <= root.Y+root.H
	}
	ratio := hit.area() / t.area()
	if o.threshold == 0 {
		return ratio > 0
	}
	return ratio >= o.threshold
}

// Margin is one side of a root margin, in pixels or percent of the view.
type Margin struct {
	Value   float64
	Percent bool
}

func (m Margin) resolve(extent float64) float64 {
	if m.Percent {
		return extent * m.Value / 100
	}
	return m.Value
}

// ParseRootMargin reads a CSS-style margin list of one to four px or % values,
// ordered top, right, bottom, left.
func ParseRootMargin(s string) ([4]Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return [4]Margin{}, fmt.Errorf("root margin %q: want 1 to 4 values", s)
	}
	parsed := make([]Margin, len(fields))
	for i, f := range fields {
		m, err := parseMargin(f)
		if err != nil {
			return [4]Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		parsed[i] = m
	}
	switch len(parsed) {
	case 1:
		return [4]Margin{parsed[0], parsed[0], parsed[0], parsed[0]}, nil
	case 2:
		return [4]Margin{parsed[0], parsed[1], parsed[0], parsed[1]}, nil
	case 3:
		return [4]Margin{parsed[0], parsed[1], parsed[2], parsed[1]}, nil
	}
	return [4]Margin{parsed[0], parsed[1], parsed[2], parsed[3]}, nil
}

func parseMargin(s string) (Margin, error) {
	var m Margin
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSuffix(s, "%")
		m.Percent = true
	case s != "0":
		return Margin{}, fmt.Errorf("value %q needs a px or %% unit", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Margin{}, fmt.Errorf("value %q: %w", s, err)
	}
	m.Value = v
	return m, nil
}
