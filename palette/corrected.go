package palette

import colorful "github.com/lucasb-eyer/go-colorful"

type stop struct {
	at float64
	c  colorful.Color
}

// Each band interpolates between its own boundaries. Past the last stop the
// color saturates.
var correctedStops = []stop{
	{0.0, colorful.Color{R: 0, G: 0, B: 1}},
	{0.1, colorful.Color{R: 0, G: 1, B: 1}},
	{0.2, colorful.Color{R: 0, G: 1, B: 0}},
	{0.3, colorful.Color{R: 1, G: 1, B: 0}},
	{0.4, colorful.Color{R: 1, G: 0, B: 0}},
}

// Corrected is the blue, cyan, green, yellow, red gradient with fractions
// consistent with the band boundaries.
func Corrected(v float64) uint32 {
	v = clamp01(v)

	last := correctedStops[len(correctedStops)-1]
	if v >= last.at {
		return packColorful(last.c)
	}
	for i := 1; i < len(correctedStops); i++ {
		hi := correctedStops[i]
		if v >= hi.at {
			continue
		}
		lo := correctedStops[i-1]
		t := (v - lo.at) / (hi.at - lo.at)
		return packColorful(lo.c.BlendRgb(hi.c, t))
	}
	return packColorful(last.c)
}

func packColorful(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return Pack(r, g, b)
}
