// Package hud draws a small diagnostics panel over the rendered frame.
package hud

import (
	"errors"
	"fmt"
	"image/color"

	"floorceil/draw"
	"floorceil/raster"

	"tinygo.org/x/tinyfont"
)

var ErrNoFont = errors.New("hud: font has no glyph metrics")

const (
	pad     = 2
	columns = 12
)

// Overlay renders time, min, max, range and fps in the top-left corner.
type Overlay struct {
	font   tinyfont.Fonter
	charW  int
	lineH  int
	X, Y   int
	Panel  color.RGBA
	Border color.RGBA
	Text   color.RGBA

	lastT float64
	fps   float64
	seen  bool
}

// New returns an overlay drawing with font. The font's "0" glyph sets the
// column width.
func New(font tinyfont.Fonter) (*Overlay, error) {
	if font == nil {
		return nil, ErrNoFont
	}
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	lineH := int(font.GetYAdvance())
	if outboxWidth == 0 || lineH == 0 {
		return nil, ErrNoFont
	}
	return &Overlay{
		font:   font,
		charW:  int(outboxWidth),
		lineH:  lineH,
		X:      2,
		Y:      2,
		Panel:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
		Border: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

// Bounds is the panel rectangle, border included.
func (o *Overlay) Bounds() (x, y, w, h int) {
	return o.X, o.Y, columns*o.charW + 2*pad, 5*o.lineH + 2*pad
}

// FPS is the smoothed frame rate derived from successive frame times.
func (o *Overlay) FPS() float64 { return o.fps }

func (o *Overlay) DrawStats(c draw.Canvas, t float64, st raster.Stats) {
	o.sample(t)

	x, y, w, h := o.Bounds()
	c.FillRect(x, y, w, h, o.Panel)
	c.OutlineRect(x, y, w, h, o.Border)

	lines := [...]string{
		field("T", t),
		field("MIN", st.Min),
		field("MAX", st.Max),
		field("RNG", st.Range()),
		field("FPS", o.fps),
	}
	for i, s := range lines {
		baseline := y + pad + i*o.lineH + o.lineH - 1
		tinyfont.WriteLine(c, o.font, int16(x+pad), int16(baseline), s, o.Text)
	}
}

func (o *Overlay) sample(t float64) {
	if !o.seen {
		o.seen = true
		o.lastT = t
		return
	}
	dt := t - o.lastT
	o.lastT = t
	if dt <= 0 {
		return
	}
	inst := 1 / dt
	if o.fps == 0 {
		o.fps = inst
		return
	}
	o.fps = 0.9*o.fps + 0.1*inst
}

// field formats a labelled value, clipped to the panel width.
func field(label string, v float64) string {
	s := fmt.Sprintf("%-4s%.4f", label, v)
	if len(s) > columns {
		s = s[:columns]
	}
	return s
}
