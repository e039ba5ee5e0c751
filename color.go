package matrixcube

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is an opaque color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Alpha returns the color with the given opacity in [0, 1].
func (c RGB) Alpha(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(Clamp(alpha, 0, 1) * 255))}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var rgbFunc = regexp.MustCompile(`rgba?\(([^)]+)\)`)
var rgbSeparators = regexp.MustCompile(`[,\s/]+`)

// ParseColor reads #rgb, #rrggbb, rgb(...) and rgba(...) forms.
// Anything else yields fallback.
func ParseColor(input string, fallback RGB) RGB {
	s := strings.ToLower(strings.TrimSpace(input))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3:
			r, okR := parseHex(hex[0:1] + hex[0:1])
			g, okG := parseHex(hex[1:2] + hex[1:2])
			b, okB := parseHex(hex[2:3] + hex[2:3])
			if okR && okG && okB {
				return RGB{R: r, G: g, B: b}
			}
		case 6:
			r, okR := parseHex(hex[0:2])
			g, okG := parseHex(hex[2:4])
			b, okB := parseHex(hex[4:6])
			if okR && okG && okB {
				return RGB{R: r, G: g, B: b}
			}
		}
	}

	m := rgbFunc.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}
	var parts []string
	for _, p := range rgbSeparators.Split(m[1], -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 3 {
		return fallback
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		channels[i] = uint8(Clamp(v, 0, 255))
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}
}

func parseHex(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
