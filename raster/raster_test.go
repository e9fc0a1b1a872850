package raster

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"floorceil/palette"
)

const canary = 0xDEADBEEF

func filled(n int) []uint32 {
	pix := make([]uint32, n)
	for i := range pix {
		pix[i] = canary
	}
	return pix
}

// reference recomputes one intensity straight from the published formula.
func reference(x, y, t float64) float64 {
	tt := float64(t*0.25) + 0.01
	c, s := math.Cos(tt), math.Sin(tt)
	x1 := float64(x*c) - float64(y*s)
	y1 := float64(y*c) + float64(x*s)
	z1 := 4.0
	x0 := float64(z1*c) - float64(x1*s)
	y0 := float64(x1*c) + float64(z1*s)
	z0 := y1
	if z0 == 0 {
		return 0
	}
	r := 32 / math.Abs(z0)
	t2 := float64(tt * 100)
	v := math.Floor(float64(x0*r)+t2) * math.Floor(float64(y0*r)-t2)
	r2 := v - float64(math.Floor((v-7.5)/16)*16)
	return float64(float64(r2*z0)*z0) * 0.0125
}

func TestRenderFrameCoversEveryPixel(t *testing.T) {
	r := &Renderer{Width: 37, Height: 23, Mapper: palette.Faithful}
	pix := filled(37 * 23)
	if _, err := r.RenderFrame(pix, 37, 2.5); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for i, p := range pix {
		if p == canary {
			t.Fatalf("pixel %d not written", i)
		}
		if p>>24 != 0xFF {
			t.Fatalf("pixel %d alpha = %#02x, want 0xff", i, p>>24)
		}
	}
}

func TestRenderFrameStats(t *testing.T) {
	const w, h, tm = 24, 16, 7.0
	r := &Renderer{Width: w, Height: h, Mapper: palette.Faithful}
	st, err := r.RenderFrame(make([]uint32, w*h), w, tm)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	want := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want.add(reference(r.Coord(x), r.Coord(y), tm))
		}
	}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
	if st.Range() != want.Max-want.Min {
		t.Fatalf("Range() = %v, want %v", st.Range(), want.Max-want.Min)
	}
}

func TestRenderFrameEndToEnd4x4(t *testing.T) {
	const w, h = 4, 4
	r := &Renderer{Width: w, Height: h, Mapper: palette.Faithful}
	pix := filled(w * h)
	if _, err := r.RenderFrame(pix, w, 0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := float64((float64(x)/w)*2.3) - 1.0
			ny := float64((float64(y)/w)*2.3) - 1.0
			want := palette.Faithful(reference(nx, ny, 0))
			if got := pix[y*w+x]; got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestRenderFrameParallelMatchesSerial(t *testing.T) {
	const w, h = 64, 50
	serial := &Renderer{Width: w, Height: h, Mapper: palette.Corrected}
	want := make([]uint32, w*h)
	wantStats, err := serial.RenderFrame(want, w, 3.75)
	if err != nil {
		t.Fatalf("serial RenderFrame: %v", err)
	}

	for _, workers := range []int{2, 3, 7, 64, 200} {
		par := &Renderer{Width: w, Height: h, Mapper: palette.Corrected, Workers: workers}
		got := filled(w * h)
		gotStats, err := par.RenderFrame(got, w, 3.75)
		if err != nil {
			t.Fatalf("workers=%d: RenderFrame: %v", workers, err)
		}
		if gotStats != wantStats {
			t.Fatalf("workers=%d: stats = %+v, want %+v", workers, gotStats, wantStats)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: pixel %d = %#08x, want %#08x", workers, i, got[i], want[i])
			}
		}
	}
}

func TestRenderFrameHonorsStride(t *testing.T) {
	const w, h, stride = 10, 6, 16
	r := &Renderer{Width: w, Height: h, Workers: 3}
	pix := filled((h-1)*stride + w)
	if _, err := r.RenderFrame(pix, stride, 1); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for i, p := range pix {
		inRow := i%stride < w
		if inRow && p == canary {
			t.Fatalf("pixel %d not written", i)
		}
		if !inRow && p != canary {
			t.Fatalf("padding %d overwritten with %#08x", i, p)
		}
	}
}

func TestRenderFrameRejectsBadBuffers(t *testing.T) {
	r := &Renderer{Width: 8, Height: 4}
	if _, err := r.RenderFrame(make([]uint32, 31), 8, 0); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("short buffer err = %v, want ErrShortBuffer", err)
	}
	if _, err := r.RenderFrame(make([]uint32, 64), 7, 0); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("narrow stride err = %v, want ErrShortBuffer", err)
	}
	empty := &Renderer{Width: 0, Height: 4}
	if _, err := empty.RenderFrame(nil, 0, 0); !errors.Is(err, ErrBadSize) {
		t.Fatalf("empty frame err = %v, want ErrBadSize", err)
	}
}

func TestExtents(t *testing.T) {
	r := &Renderer{Width: 320, Height: 160}
	minX, maxX, minY, maxY := r.Extents()
	if minX != -1 || minY != -1 {
		t.Fatalf("min extents = (%v, %v), want (-1, -1)", minX, minY)
	}
	if maxX <= maxY {
		t.Fatalf("maxX = %v, maxY = %v, want maxX > maxY for a wide frame", maxX, maxY)
	}
}

func BenchmarkRenderFrame(b *testing.B) {
	for _, workers := range []int{1, 4} {
		r := &Renderer{Width: 320, Height: 240, Mapper: palette.Faithful, Workers: workers}
		pix := make([]uint32, 320*240)
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			tm := 0.0
			for b.Loop() {
				if _, err := r.RenderFrame(pix, 320, tm); err != nil {
					b.Fatal(err)
				}
				tm += 1.0 / 60
			}
		})
	}
}
