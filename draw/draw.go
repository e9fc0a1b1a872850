// Package draw provides clipped drawing primitives over packed ARGB pixels.
//
// Colors are straight (non-premultiplied) color.RGBA values, as the tinyfont
// and drivers packages use them. Alpha below 255 blends source-over; the
// destination stays opaque.
package draw

import (
	"image/color"
	"math"

	"floorceil/palette"

	"tinygo.org/x/drivers"
)

// Canvas is the drawing capability handed to overlays.
type Canvas interface {
	drivers.Displayer

	FillRect(x, y, w, h int, c color.RGBA)
	OutlineRect(x, y, w, h int, c color.RGBA)
	Line(x0, y0, x1, y1 int, c color.RGBA)
	FLine(x0, y0, x1, y1 float64, c color.RGBA)
}

// Surface draws into a locked framebuffer region.
type Surface struct {
	Pix    []uint32
	Stride int
	W, H   int
}

var _ Canvas = (*Surface)(nil)

// NewSurface wraps pix as a w x h surface with the given row stride in pixels.
func NewSurface(pix []uint32, stride, w, h int) *Surface {
	return &Surface{Pix: pix, Stride: stride, W: w, H: h}
}

func (s *Surface) Size() (x, y int16) { return int16(s.W), int16(s.H) }

func (s *Surface) Display() error { return nil }

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.plot(int(x), int(y), c)
}

// At returns the packed pixel at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) uint32 {
	i, ok := s.index(x, y)
	if !ok {
		return 0
	}
	return s.Pix[i]
}

// Clear fills the whole surface with an opaque color.
func (s *Surface) Clear(c color.RGBA) {
	c.A = 0xFF
	s.FillRect(0, 0, s.W, s.H, c)
}

func (s *Surface) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0, false
	}
	i := y*s.Stride + x
	if i >= len(s.Pix) {
		return 0, false
	}
	return i, true
}

func (s *Surface) plot(x, y int, c color.RGBA) {
	i, ok := s.index(x, y)
	if !ok || c.A == 0 {
		return
	}
	if c.A == 0xFF {
		s.Pix[i] = palette.Pack(c.R, c.G, c.B)
		return
	}
	s.Pix[i] = blend(s.Pix[i], c)
}

// FillRect fills the w x h rectangle at (x, y), clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.W), min(y+h, s.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	opaque := palette.Pack(c.R, c.G, c.B)
	for yy := y0; yy < y1; yy++ {
		start := yy * s.Stride
		if start+x1 > len(s.Pix) {
			return
		}
		row := s.Pix[start+x0 : start+x1]
		if c.A == 0xFF {
			for i := range row {
				row[i] = opaque
			}
			continue
		}
		for i := range row {
			row[i] = blend(row[i], c)
		}
	}
}

// OutlineRect draws the 1-pixel border of the w x h rectangle at (x, y).
func (s *Surface) OutlineRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.FillRect(x, y, w, 1, c)
	if h > 1 {
		s.FillRect(x, y+h-1, w, 1, c)
	}
	if h > 2 {
		s.FillRect(x, y+1, 1, h-2, c)
		if w > 1 {
			s.FillRect(x+w-1, y+1, 1, h-2, c)
		}
	}
}

// Line draws a Bresenham line including both endpoints.
func (s *Surface) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FLine draws a line between sub-pixel endpoints, stepping once per pixel
// along the major axis and rounding to the nearest pixel.
func (s *Surface) FLine(x0, y0, x1, y1 float64, c color.RGBA) {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return
	}
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		s.plot(int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}
	px, py := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := int(math.Round(x0 + dx*f))
		y := int(math.Round(y0 + dy*f))
		// Translucent lines blend each pixel once.
		if x == px && y == py {
			continue
		}
		s.plot(x, y, c)
		px, py = x, y
	}
}

func blend(dst uint32, c color.RGBA) uint32 {
	a := uint32(c.A)
	inv := 255 - a
	mix := func(s uint8, d uint32) uint8 {
		return uint8((uint32(s)*a + d*inv + 127) / 255)
	}
	return palette.Pack(
		mix(c.R, (dst>>16)&0xFF),
		mix(c.G, (dst>>8)&0xFF),
		mix(c.B, dst&0xFF),
	)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
