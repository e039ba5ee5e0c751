package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/matrixcube/surface"
	"github.com/smasonuk/matrixcube/surface/ebitensurface"
)

// Overlay text metrics. The mono face advances 0.6em, so 15px text fills a 9x18 cell.
const (
	overlayFontSize = 15
	overlayCellW    = 9
	overlayCellH    = 18
)

// windowCanvas hands the rain animator an ebiten surface the size of the window.
type windowCanvas struct {
	g   *game
	cur *ebitensurface.Surface
}

func (c *windowCanvas) Bounds() (float64, float64) {
	return float64(c.g.width), float64(c.g.height)
}

func (c *windowCanvas) DevicePixelRatio() float64 {
	if c.g.cfg.Display.MaxDPR > 0 {
		return c.g.cfg.Display.MaxDPR
	}
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (c *windowCanvas) Allocate(width, height, scale float64) (surface.Surface, error) {
	s, err := ebitensurface.New(width, height, scale)
	if err != nil {
		return nil, err
	}
	c.dispose()
	c.cur = s
	return s, nil
}

func (c *windowCanvas) image() (*ebiten.Image, float64) {
	if c.cur == nil {
		return nil, 1
	}
	return c.cur.Image(), c.cur.Scale()
}

func (c *windowCanvas) dispose() {
	if c.cur != nil {
		c.cur.Dispose()
		c.cur = nil
	}
}

// overlay is the ASCII animator's container and text sink. Each frame is
// typeset onto a transparent surface centred in the window.
type overlay struct {
	g    *game
	surf *ebitensurface.Surface
	text string
}

func (o *overlay) Size() (float64, float64) {
	return float64(o.g.width), float64(o.g.height)
}

func (o *overlay) allocate() {
	s, err := ebitensurface.New(float64(o.g.width), float64(o.g.height), 1)
	if err != nil {
		o.g.log.Debug("overlay unavailable")
		return
	}
	o.dispose()
	o.surf = s
	if o.text != "" {
		o.SetText(o.text)
	}
}

func (o *overlay) SetText(text string) {
	o.text = text
	if o.surf == nil {
		return
	}
	o.surf.Clear(color.NRGBA{})

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, len(l))
	}
	w, h := o.surf.Size()
	boxW := float64(cols * overlayCellW)
	boxH := float64(len(lines) * overlayCellH)
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	theme := o.g.theme
	o.surf.FillRect(x0-overlayCellW, y0-overlayCellH/2, boxW+2*overlayCellW, boxH+overlayCellH, theme.Background.Alpha(0.55))
	ink := theme.Brand.Alpha(0.9)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		o.surf.DrawText(l, x0, y0+float64(i*overlayCellH), overlayFontSize, surface.BaselineTop, ink)
	}
}

func (o *overlay) image() *ebiten.Image {
	if o.surf == nil {
		return nil
	}
	return o.surf.Image()
}

func (o *overlay) dispose() {
	if o.surf != nil {
		o.surf.Dispose()
		o.surf = nil
	}
}
