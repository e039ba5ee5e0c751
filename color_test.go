package matrixcube

import "testing"

func TestParseColor(t *testing.T) {
	fallback := RGB{R: 1, G: 2, B: 3}
	testCases := []struct {
		input string
		want  RGB
	}{
		{"#0f8", RGB{R: 0, G: 255, B: 136}},
		{"#0C6B8F", RGB{R: 12, G: 107, B: 143}},
		{"  #fffdf7 ", RGB{R: 255, G: 253, B: 247}},
		{"rgb(12,34,56)", RGB{R: 12, G: 34, B: 56}},
		{"rgb(12, 34, 56)", RGB{R: 12, G: 34, B: 56}},
		{"rgba(191, 90, 42, 0.5)", RGB{R: 191, G: 90, B: 42}},
		{"rgb(12 34 56 / 50%)", RGB{R: 12, G: 34, B: 56}},
		{"rgb(300, -4, 10)", RGB{R: 255, G: 0, B: 10}},
		{"", fallback},
		{"#12", fallback},
		{"#ggg", fallback},
		{"rgb(1, 2)", fallback},
		{"rgb(a, b, c)", fallback},
		{"teal", fallback},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseColor(tc.input, fallback); got != tc.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRGBAlpha(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}
	if got := c.Alpha(1); got.A != 255 || got.R != 10 {
		t.Errorf("Alpha(1) = %+v", got)
	}
	if got := c.Alpha(-1); got.A != 0 {
		t.Errorf("Alpha(-1).A = %d, want 0", got.A)
	}
	if got := c.Alpha(0.5); got.A != 128 {
		t.Errorf("Alpha(0.5).A = %d, want 128", got.A)
	}
	if c.String() != "#0a141e" {
		t.Errorf("String() = %s", c.String())
	}
}
