// Package palette maps shader intensities to packed 0xAARRGGBB colors.
package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Mapper turns an intensity into an opaque packed color.
type Mapper func(v float64) uint32

// ErrUnknownPalette is returned by Lookup for names it does not know.
var ErrUnknownPalette = errors.New("palette: unknown palette")

const opaque = 0xFF << 24

// Pack returns an opaque 0xAARRGGBB value.
func Pack(r, g, b uint8) uint32 {
	return opaque | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed color into its channels.
func Unpack(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

var mappers = map[string]Mapper{
	"faithful":  Faithful,
	"corrected": Corrected,
}

// Names lists the palettes Lookup accepts.
func Names() []string {
	out := make([]string, 0, len(mappers))
	for name := range mappers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a palette by name. The empty name selects Faithful.
func Lookup(name string) (Mapper, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Faithful, nil
	}
	m, ok := mappers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPalette, name, strings.Join(Names(), ", "))
	}
	return m, nil
}
