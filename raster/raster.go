// Package raster walks a frame and fills it with shaded, color-mapped pixels.
package raster

import (
	"errors"
	"fmt"
	"math"

	"floorceil/palette"
	"floorceil/shader"

	"golang.org/x/sync/errgroup"
)

const (
	// CoordScale and CoordShift map pixel indices into shader space.
	CoordScale = 2.3
	CoordShift = -1.0
)

var (
	ErrShortBuffer = errors.New("raster: buffer too short")
	ErrBadSize     = errors.New("raster: invalid frame size")
)

// Stats folds every intensity produced by one RenderFrame call.
type Stats struct {
	Min float64
	Max float64
}

func (s Stats) Range() float64 { return s.Max - s.Min }

func emptyStats() Stats {
	return Stats{Min: math.Inf(1), Max: math.Inf(-1)}
}

func (s *Stats) add(v float64) {
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
}

func (s *Stats) merge(o Stats) {
	s.Min = math.Min(s.Min, o.Min)
	s.Max = math.Max(s.Max, o.Max)
}

// Renderer renders Width x Height frames.
//
// Workers > 1 splits the rows into that many bands rendered concurrently;
// the output is identical to the inline walk.
type Renderer struct {
	Width   int
	Height  int
	Mapper  palette.Mapper
	Workers int
}

// Coord returns the shader-space coordinate of pixel index v.
// Both axes are normalized by the width.
func (r *Renderer) Coord(v int) float64 {
	return shader.Coord(float64(v), float64(r.Width), CoordScale, CoordShift)
}

// Extents reports the shader-space corners of the frame.
func (r *Renderer) Extents() (minX, maxX, minY, maxY float64) {
	return r.Coord(0), r.Coord(r.Width - 1), r.Coord(0), r.Coord(r.Height - 1)
}

// RenderFrame writes every pixel of the frame into pix, indexed y*stride+x.
// Cells past Width in each row are left untouched.
func (r *Renderer) RenderFrame(pix []uint32, stride int, t float64) (Stats, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return Stats{}, fmt.Errorf("%w: %dx%d", ErrBadSize, r.Width, r.Height)
	}
	if stride < r.Width {
		return Stats{}, fmt.Errorf("%w: stride %d < width %d", ErrShortBuffer, stride, r.Width)
	}
	if need := (r.Height-1)*stride + r.Width; len(pix) < need {
		return Stats{}, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(pix), need)
	}

	mapper := r.Mapper
	if mapper == nil {
		mapper = palette.Faithful
	}

	// Row coordinates are shared by every band.
	xs := make([]float64, r.Width)
	for x := range xs {
		xs[x] = r.Coord(x)
	}

	workers := r.Workers
	if workers > r.Height {
		workers = r.Height
	}
	if workers <= 1 {
		return r.renderRows(pix, stride, t, xs, mapper, 0, r.Height), nil
	}

	bands := make([]Stats, workers)
	rows := (r.Height + workers - 1) / workers
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		y0 := i * rows
		y1 := min(y0+rows, r.Height)
		if y0 >= y1 {
			bands[i] = emptyStats()
			continue
		}
		g.Go(func() error {
			bands[i] = r.renderRows(pix, stride, t, xs, mapper, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	st := emptyStats()
	for _, b := range bands {
		st.merge(b)
	}
	return st, nil
}

func (r *Renderer) renderRows(pix []uint32, stride int, t float64, xs []float64, mapper palette.Mapper, y0, y1 int) Stats {
	st := emptyStats()
	for y := y0; y < y1; y++ {
		ny := r.Coord(y)
		row := pix[y*stride : y*stride+r.Width]
		for x, nx := range xs {
			v := shader.Shade(nx, ny, t)
			st.add(v)
			row[x] = mapper(v)
		}
	}
	return st
}
