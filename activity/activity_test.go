package activity

import (
	"testing"
)

type fixedTarget Rect

func (t fixedTarget) Rect() Rect { return Rect(t) }

type movingTarget struct{ r Rect }

func (t *movingTarget) Rect() Rect { return t.r }

func TestDeriveAllCombinations(t *testing.T) {
	for _, inView := range []bool{false, true} {
		for _, visible := range []bool{false, true} {
			for _, reduced := range []bool{false, true} {
				s := Derive(inView, visible, reduced)
				want := inView && visible && !reduced
				if s.IsActive != want {
					t.Errorf("Derive(%v, %v, %v).IsActive = %v, want %v", inView, visible, reduced, s.IsActive, want)
				}
				if s.IsInView != inView || s.IsPageVisible != visible || s.ReducedMotion != reduced {
					t.Errorf("Derive(%v, %v, %v) = %+v", inView, visible, reduced, s)
				}
			}
		}
	}
}

func TestWatchWithoutProviders(t *testing.T) {
	m := Watch(nil, Options{}, Providers{})
	defer m.Close()
	want := State{IsActive: true, IsInView: true, IsPageVisible: true}
	if got := m.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestWatchTracksSources(t *testing.T) {
	inView := NewSignal(false)
	visible := NewSignal(true)
	reduced := NewSignal(false)

	m := Watch(fixedTarget{}, Options{Threshold: Float(0.1)}, Providers{
		Intersection: SignalIntersection{inView},
		Visibility:   visible,
		Motion:       ReducedMotionSignal{reduced},
	})
	var seen []State
	m.OnChange(func(s State) { seen = append(seen, s) })

	if m.State().IsActive {
		t.Fatal("should start inactive while out of view")
	}

	inView.Set(true)
	if !m.State().IsActive {
		t.Errorf("in view and visible should be active, got %+v", m.State())
	}

	visible.Set(false)
	if got := m.State(); got != (State{IsInView: true}) {
		t.Errorf("hidden page state = %+v", got)
	}

	visible.Set(true)
	reduced.Set(true)
	if got := m.State(); got.IsActive || !got.ReducedMotion {
		t.Errorf("reduced motion state = %+v", got)
	}

	reduced.Set(false)
	if !m.State().IsActive {
		t.Error("clearing reduced motion should reactivate")
	}
	if len(seen) != 5 {
		t.Errorf("got %d change notifications, want 5: %+v", len(seen), seen)
	}

	m.Close()
	inView.Set(false)
	if len(seen) != 5 {
		t.Error("handler ran after Close")
	}
	if len(inView.subs) != 0 || len(visible.subs) != 0 || len(reduced.subs) != 0 {
		t.Error("Close left subscriptions behind")
	}
}

func TestSignalSetNotifiesOnlyOnChange(t *testing.T) {
	s := NewSignal(false)
	calls := 0
	unsubscribe := s.Subscribe(func(bool) { calls++ })
	s.Set(false)
	s.Set(true)
	s.Set(true)
	unsubscribe()
	s.Set(false)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestViewportThreshold(t *testing.T) {
	vp := NewViewport(Rect{W: 100, H: 100})
	target := &movingTarget{r: Rect{X: 10, Y: 90, W: 50, H: 50}}

	var states []bool
	stop := vp.Observe(target, Options{}, func(in bool) { states = append(states, in) })
	defer stop()

	// 10 of 50 rows visible: 20% meets the default threshold
	if len(states) != 1 || !states[0] {
		t.Fatalf("initial states = %v, want [true]", states)
	}

	target.r.Y = 95
	vp.Refresh()
	if len(states) != 2 || states[1] {
		t.Fatalf("states = %v, want a false after scrolling away", states)
	}

	vp.Update(Rect{Y: 50, W: 100, H: 100})
	if len(states) != 3 || !states[2] {
		t.Errorf("states = %v, want true after the view moved", states)
	}
}

func TestViewportThresholdOptions(t *testing.T) {
	vp := NewViewport(Rect{W: 100, H: 100})
	// 10% of the target overlaps the view
	overlapping := fixedTarget{X: 0, Y: 90, W: 100, H: 100}
	outside := fixedTarget{X: 0, Y: 150, W: 100, H: 100}

	testCases := []struct {
		name   string
		target Target
		opts   Options
		want   bool
	}{
		{"default needs 20%", overlapping, Options{}, false},
		{"zero accepts any overlap", overlapping, Options{Threshold: Float(0)}, true},
		{"zero still needs overlap", outside, Options{Threshold: Float(0)}, false},
		{"explicit 10%", overlapping, Options{Threshold: Float(0.1)}, true},
		{"explicit 50%", overlapping, Options{Threshold: Float(0.5)}, false},
		{"full overlap at 1", fixedTarget{X: 10, Y: 10, W: 20, H: 20}, Options{Threshold: Float(1)}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got bool
			stop := vp.Observe(tc.target, tc.opts, func(in bool) { got = in })
			defer stop()
			if got != tc.want {
				t.Errorf("in view = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestViewportRootMargin(t *testing.T) {
	vp := NewViewport(Rect{W: 100, H: 100})
	target := fixedTarget{X: 0, Y: 120, W: 100, H: 20}

	var plain, grown bool
	vp.Observe(target, Options{}, func(in bool) { plain = in })
	vp.Observe(target, Options{RootMargin: "0px 0px 50%", Threshold: Float(0.5)}, func(in bool) { grown = in })

	if plain {
		t.Error("target below the view should be out of view")
	}
	if !grown {
		t.Error("bottom margin should pull the target into view")
	}
}

func TestParseRootMargin(t *testing.T) {
	testCases := []struct {
		in      string
		want    [4]Margin
		wantErr bool
	}{
		{in: "0px", want: [4]Margin{}},
		{in: "0", want: [4]Margin{}},
		{in: "10px 20%", want: [4]Margin{{Value: 10}, {Value: 20, Percent: true}, {Value: 10}, {Value: 20, Percent: true}}},
		{in: "1px 2px 3px", want: [4]Margin{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 2}}},
		{in: "1px 2px 3px 4px", want: [4]Margin{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}}},
		{in: "", wantErr: true},
		{in: "10", wantErr: true},
		{in: "apx", wantErr: true},
		{in: "1px 1px 1px 1px 1px", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRootMargin(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseRootMargin(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseRootMargin(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}
