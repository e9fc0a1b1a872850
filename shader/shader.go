// Package shader holds the closed-form floor/ceiling perspective function.
//
// Products are wrapped in explicit float64 conversions so the compiler never
// fuses them into FMA instructions; the output is then identical on every
// architecture.
package shader

import "math"

const (
	timeScale   = 0.25
	timeOffset  = 0.01
	planeDepth  = 4.0
	perspective = 32.0
	scrollRate  = 100.0
	bandOffset  = 7.5
	bandWidth   = 16.0
	falloff     = 0.0125
)

// Coord normalizes a pixel index against the raster width.
func Coord(v, width, scale, shift float64) float64 {
	return float64((v/width)*scale) + shift
}

// Shade returns the intensity at normalized (x, y) and time t.
// The result is finite for finite inputs.
func Shade(x, y, t float64) float64 {
	tt := float64(t*timeScale) + timeOffset
	c, s := math.Cos(tt), math.Sin(tt)

	x1 := float64(x*c) - float64(y*s)
	y1 := float64(y*c) + float64(x*s)
	z1 := planeDepth

	x0 := float64(z1*c) - float64(x1*s)
	y0 := float64(x1*c) + float64(z1*s)
	z0 := y1
	if z0 == 0 {
		return 0
	}

	r := perspective / math.Abs(z0)
	scroll := float64(tt * scrollRate)
	v := math.Floor(float64(x0*r)+scroll) * math.Floor(float64(y0*r)-scroll)
	r2 := v - float64(math.Floor((v-bandOffset)/bandWidth)*bandWidth)
	return float64(float64(r2*z0)*z0) * falloff
}
