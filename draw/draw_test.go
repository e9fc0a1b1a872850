package draw

import (
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newTestSurface(w, h, stride int) *Surface {
	pix := make([]uint32, (h-1)*stride+w)
	for i := range pix {
		pix[i] = 0xFF000000
	}
	return NewSurface(pix, stride, w, h)
}

func count(s *Surface, want uint32) int {
	n := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.At(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	s := newTestSurface(8, 6, 10)
	s.FillRect(-3, -2, 6, 5, red)
	if got := count(s, 0xFFFF0000); got != 3*3 {
		t.Fatalf("filled = %d, want 9", got)
	}
	if s.At(2, 2) != 0xFFFF0000 || s.At(3, 0) != 0xFF000000 {
		t.Fatalf("unexpected fill edges: (2,2)=%#08x (3,0)=%#08x", s.At(2, 2), s.At(3, 0))
	}

	s.FillRect(6, 4, 100, 100, red)
	if got := count(s, 0xFFFF0000); got != 9+2*2 {
		t.Fatalf("filled = %d, want 13", got)
	}
	// Padding past W stays untouched.
	if s.Pix[8] != 0xFF000000 || s.Pix[9] != 0xFF000000 {
		t.Fatalf("padding overwritten: %#08x %#08x", s.Pix[8], s.Pix[9])
	}
}

func TestFillRectBlends(t *testing.T) {
	s := newTestSurface(4, 4, 4)
	s.FillRect(0, 0, 4, 4, color.RGBA{R: 255, A: 128})
	if got := s.At(1, 1); got != 0xFF800000 {
		t.Fatalf("blended = %#08x, want 0xff800000", got)
	}
	s.FillRect(0, 0, 4, 4, color.RGBA{G: 255})
	if got := s.At(1, 1); got != 0xFF800000 {
		t.Fatalf("transparent fill changed pixel to %#08x", got)
	}
}

func TestOutlineRect(t *testing.T) {
	s := newTestSurface(10, 10, 10)
	s.OutlineRect(2, 2, 5, 4, white)
	if got := count(s, 0xFFFFFFFF); got != 2*5+2*2 {
		t.Fatalf("outline pixels = %d, want 14", got)
	}
	if s.At(3, 3) != 0xFF000000 {
		t.Fatalf("interior written: %#08x", s.At(3, 3))
	}
	for _, p := range [][2]int{{2, 2}, {6, 2}, {2, 5}, {6, 5}} {
		if s.At(p[0], p[1]) != 0xFFFFFFFF {
			t.Fatalf("corner %v not drawn", p)
		}
	}
}

func TestOutlineRectBlendsEachPixelOnce(t *testing.T) {
	s := newTestSurface(6, 6, 6)
	s.OutlineRect(0, 0, 6, 6, color.RGBA{R: 255, A: 128})
	if got := s.At(0, 0); got != 0xFF800000 {
		t.Fatalf("corner = %#08x, want 0xff800000", got)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 1, 1, 6, 1, 6},
		{"vertical", 3, 7, 3, 0, 8},
		{"diagonal", 0, 0, 7, 7, 8},
		{"point", 4, 4, 4, 4, 1},
		{"clipped", -5, 2, 20, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(8, 8, 8)
			s.Line(tt.x0, tt.y0, tt.x1, tt.y1, white)
			if got := count(s, 0xFFFFFFFF); got != tt.want {
				t.Fatalf("pixels = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFLine(t *testing.T) {
	s := newTestSurface(8, 8, 8)
	s.FLine(0.4, 0.4, 6.6, 0.4, white)
	if got := count(s, 0xFFFFFFFF); got != 8 {
		t.Fatalf("pixels = %d, want 8", got)
	}
	for x := 0; x < 8; x++ {
		if s.At(x, 0) != 0xFFFFFFFF {
			t.Fatalf("pixel (%d,0) not drawn", x)
		}
	}

	s = newTestSurface(8, 8, 8)
	s.FLine(1.2, 1.2, 1.4, 1.3, white)
	if got := count(s, 0xFFFFFFFF); got != 1 {
		t.Fatalf("short line pixels = %d, want 1", got)
	}
}

func TestSetPixelAsDisplayer(t *testing.T) {
	s := newTestSurface(4, 3, 4)
	if w, h := s.Size(); w != 4 || h != 3 {
		t.Fatalf("Size() = %d,%d, want 4,3", w, h)
	}
	s.SetPixel(3, 2, red)
	s.SetPixel(4, 2, red)
	s.SetPixel(-1, 0, red)
	if got := count(s, 0xFFFF0000); got != 1 {
		t.Fatalf("pixels = %d, want 1", got)
	}
	if err := s.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}
