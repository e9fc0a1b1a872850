package hud

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 6x8 monospace bitmap font covering digits, upper-case letters
// and the punctuation the overlay prints. Lower-case input is drawn upper-case.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = newFont6x8()

const (
	glyphW = 6
	glyphH = 8
)

type font6x8 struct {
	g      glyph
	bitmap map[rune][glyphH]uint8
}

type glyph struct {
	r    rune
	rows [glyphH]uint8
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row := 0; row < glyphH; row++ {
		b := g.rows[row]
		// Bit5 is the leftmost pixel.
		for col := 0; col < glyphW; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphW,
		Height:   glyphH,
		XAdvance: glyphW,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return glyphH }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	rows, ok := f.bitmap[r]
	if !ok {
		r = '?'
		rows = f.bitmap[r]
	}
	f.g.r = r
	f.g.rows = rows
	return &f.g
}

func newFont6x8() *font6x8 {
	f := &font6x8{bitmap: make(map[rune][glyphH]uint8, len(glyphArt))}
	for r, art := range glyphArt {
		var rows [glyphH]uint8
		for i, line := range strings.Fields(art) {
			if i >= glyphH {
				break
			}
			for col, px := range line {
				if px == '#' && col < glyphW {
					rows[i] |= 0x20 >> col
				}
			}
		}
		f.bitmap[r] = rows
	}
	return f
}

// glyphArt holds 5x7 glyphs, one whitespace-separated field per row.
var glyphArt = map[rune]string{
	' ': "..... ..... ..... ..... ..... ..... .....",
	'.': "..... ..... ..... ..... ..... .##.. .##..",
	':': "..... .##.. .##.. ..... .##.. .##.. .....",
	'-': "..... ..... ..... ##### ..... ..... .....",
	'+': "..... ..#.. ..#.. ##### ..#.. ..#.. .....",
	'%': "##... ##..# ...#. ..#.. .#... #..## ...##",
	'/': "..... ....# ...#. ..#.. .#... #.... .....",
	'=': "..... ..... ##### ..... ##### ..... .....",
	'?': ".###. #...# ....# ...#. ..#.. ..... ..#..",
	'0': ".###. #...# #..## #.#.# ##..# #...# .###.",
	'1': "..#.. .##.. ..#.. ..#.. ..#.. ..#.. .###.",
	'2': ".###. #...# ....# ...#. ..#.. .#... #####",
	'3': "##### ...#. ..#.. ...#. ....# #...# .###.",
	'4': "...#. ..##. .#.#. #..#. ##### ...#. ...#.",
	'5': "##### #.... ####. ....# ....# #...# .###.",
	'6': "..##. .#... #.... ####. #...# #...# .###.",
	'7': "##### ....# ...#. ..#.. .#... .#... .#...",
	'8': ".###. #...# #...# .###. #...# #...# .###.",
	'9': ".###. #...# #...# .#### ....# ...#. .##..",
	'A': ".###. #...# #...# ##### #...# #...# #...#",
	'B': "####. #...# #...# ####. #...# #...# ####.",
	'C': ".###. #...# #.... #.... #.... #...# .###.",
	'D': "###.. #..#. #...# #...# #...# #..#. ###..",
	'E': "##### #.... #.... ####. #.... #.... #####",
	'F': "##### #.... #.... ####. #.... #.... #....",
	'G': ".###. #...# #.... #.### #...# #...# .####",
	'H': "#...# #...# #...# ##### #...# #...# #...#",
	'I': ".###. ..#.. ..#.. ..#.. ..#.. ..#.. .###.",
	'J': "..### ...#. ...#. ...#. ...#. #..#. .##..",
	'K': "#...# #..#. #.#.. ##... #.#.. #..#. #...#",
	'L': "#.... #.... #.... #.... #.... #.... #####",
	'M': "#...# ##.## #.#.# #.#.# #...# #...# #...#",
	'N': "#...# #...# ##..# #.#.# #..## #...# #...#",
	'O': ".###. #...# #...# #...# #...# #...# .###.",
	'P': "####. #...# #...# ####. #.... #.... #....",
	'Q': ".###. #...# #...# #...# #.#.# #..#. .##.#",
	'R': "####. #...# #...# ####. #.#.. #..#. #...#",
	'S': ".#### #.... #.... .###. ....# ....# ####.",
	'T': "##### ..#.. ..#.. ..#.. ..#.. ..#.. ..#..",
	'U': "#...# #...# #...# #...# #...# #...# .###.",
	'V': "#...# #...# #...# #...# #...# .#.#. ..#..",
	'W': "#...# #...# #...# #.#.# #.#.# #.#.# .#.#.",
	'X': "#...# #...# .#.#. ..#.. .#.#. #...# #...#",
	'Y': "#...# #...# .#.#. ..#.. ..#.. ..#.. ..#..",
	'Z': "##### ....# ...#. ..#.. .#... #.... #####",
}
