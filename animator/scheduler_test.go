package animator

import "testing"

func TestTickerRunsBatchAndDefersNewRequests(t *testing.T) {
	tk := NewTicker()
	var order []string

	tk.RequestFrame(func(float64) {
		order = append(order, "a")
		tk.RequestFrame(func(float64) { order = append(order, "c") })
	})
	tk.RequestFrame(func(float64) { order = append(order, "b") })

	if ran := tk.Tick(16); ran != 2 {
		t.Fatalf("first tick ran %d callbacks, want 2", ran)
	}
	if len(order) != 2 || tk.Pending() != 1 {
		t.Fatalf("order = %v, pending = %d", order, tk.Pending())
	}
	tk.Tick(32)
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("order = %v, want a b c", order)
	}
	if tk.Tick(48) != 0 {
		t.Error("empty ticker ran callbacks")
	}
}

func TestTickerCancel(t *testing.T) {
	tk := NewTicker()
	ran := false
	id := tk.RequestFrame(func(float64) { ran = true })
	if id == 0 {
		t.Fatal("frame id must not be zero")
	}
	keep := tk.RequestFrame(func(float64) {})
	tk.CancelFrame(id)
	if ids := tk.IDs(); len(ids) != 1 || ids[0] != keep {
		t.Errorf("IDs() = %v, want [%d]", ids, keep)
	}
	tk.Tick(1)
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestTickerCancelDuringTick(t *testing.T) {
	tk := NewTicker()
	var second FrameID
	ran := false
	tk.RequestFrame(func(float64) { tk.CancelFrame(second) })
	second = tk.RequestFrame(func(float64) { ran = true })
	tk.Tick(1)
	if ran {
		t.Error("callback cancelled earlier in the same tick still ran")
	}
}

func TestFrameGate(t *testing.T) {
	g := NewFrameGate(20)
	if g.Interval() != 50 {
		t.Fatalf("Interval() = %v, want 50", g.Interval())
	}
	steps := []struct {
		ts      float64
		elapsed float64
		ok      bool
	}{
		{1000, 50, true},
		{1020, 20, false},
		{1049, 49, false},
		{1080, 80, true},
		{1130, 50, true},
	}
	for _, s := range steps {
		elapsed, ok := g.Step(s.ts)
		if elapsed != s.elapsed || ok != s.ok {
			t.Errorf("Step(%v) = %v, %v; want %v, %v", s.ts, elapsed, ok, s.elapsed, s.ok)
		}
	}
	g.Reset()
	if elapsed, ok := g.Step(1131); !ok || elapsed != 50 {
		t.Errorf("after Reset Step = %v, %v", elapsed, ok)
	}
	if NewFrameGate(0).Interval() <= 0 {
		t.Error("zero fps should fall back to a positive interval")
	}
}

func TestApplyActivityPriority(t *testing.T) {
	testCases := []struct {
		name string
		rt   Runtime
		want string
	}{
		{"reduced wins over active", Runtime{IsActive: true, ReducedMotion: true}, "static"},
		{"active", Runtime{IsActive: true}, "start"},
		{"inactive", Runtime{}, "inactive"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &recordingControls{}
			applyActivity(c, tc.rt, func() { c.calls = append(c.calls, "inactive") })
			if len(c.calls) != 1 || c.calls[0] != tc.want {
				t.Errorf("calls = %v, want [%s]", c.calls, tc.want)
			}
		})
	}
}

type recordingControls struct{ calls []string }

func (c *recordingControls) Start()        { c.calls = append(c.calls, "start") }
func (c *recordingControls) Stop()         { c.calls = append(c.calls, "stop") }
func (c *recordingControls) RenderStatic() { c.calls = append(c.calls, "static") }

func TestRuntimeRenderCube(t *testing.T) {
	if !(Runtime{}).renderCube() {
		t.Error("nil RenderCube should default to true")
	}
	if (Runtime{RenderCube: Bool(false)}).renderCube() {
		t.Error("explicit false ignored")
	}
}
