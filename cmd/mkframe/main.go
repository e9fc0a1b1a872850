package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"floorceil/hal"
	"floorceil/palette"
	"floorceil/raster"
)

const defaultOutPath = "frame.png"

type options struct {
	width    int
	height   int
	t        float64
	palette  string
	workers  int
	gradient bool
	outPath  string
}

func main() {
	var opt options
	flag.IntVar(&opt.width, "width", hal.DefaultWidth, "Frame width in pixels.")
	flag.IntVar(&opt.height, "height", hal.DefaultHeight, "Frame height in pixels.")
	flag.Float64Var(&opt.t, "t", 0, "Time in seconds to render.")
	flag.StringVar(&opt.palette, "palette", "faithful", "Color palette: "+strings.Join(palette.Names(), ", ")+".")
	flag.IntVar(&opt.workers, "workers", 1, "Row bands rendered in parallel.")
	flag.BoolVar(&opt.gradient, "gradient", false, "Write the palette as a strip from intensity 0 (left) to 1 (right) instead of a frame.")
	flag.StringVar(&opt.outPath, "out", defaultOutPath, "Output PNG path.")
	flag.Parse()

	if opt.outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if opt.width <= 0 || opt.height <= 0 {
		fmt.Fprintln(os.Stderr, "error: -width and -height must be positive")
		os.Exit(2)
	}

	st, err := run(opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if !opt.gradient {
		fmt.Printf("min: %f, max: %f, range: %f\n", st.Min, st.Max, st.Range())
	}
	fmt.Println("wrote", opt.outPath)
}

func run(opt options) (raster.Stats, error) {
	mapper, err := palette.Lookup(opt.palette)
	if err != nil {
		return raster.Stats{}, err
	}

	pix := make([]uint32, opt.width*opt.height)
	var st raster.Stats
	if opt.gradient {
		renderGradient(pix, opt.width, opt.height, mapper)
	} else {
		r := &raster.Renderer{Width: opt.width, Height: opt.height, Mapper: mapper, Workers: opt.workers}
		st, err = r.RenderFrame(pix, opt.width, opt.t)
		if err != nil {
			return raster.Stats{}, fmt.Errorf("render: %w", err)
		}
	}

	if err := hal.WritePNG(opt.outPath, hal.NRGBA(pix, opt.width, opt.height, opt.width)); err != nil {
		return raster.Stats{}, err
	}
	return st, nil
}

// renderGradient maps column x to intensity x/(w-1).
func renderGradient(pix []uint32, w, h int, mapper palette.Mapper) {
	den := float64(max(w-1, 1))
	for x := 0; x < w; x++ {
		c := mapper(float64(x) / den)
		for y := 0; y < h; y++ {
			pix[y*w+x] = c
		}
	}
}
