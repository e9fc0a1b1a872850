// Package app wires the renderer, overlay and frame loop onto a HAL.
package app

import (
	"fmt"
	"runtime"

	"floorceil/hal"
	"floorceil/hud"
	"floorceil/loop"
	"floorceil/palette"
	"floorceil/raster"
)

type Config struct {
	Palette string
	// Workers is the number of row bands rendered in parallel; 0 uses every CPU.
	Workers int
	Debug   bool
	HUD     bool
}

// New builds the effect for h and returns its per-tick step function.
func New(h hal.HAL, cfg Config) (func() error, error) {
	d, err := NewDriver(h, cfg)
	if err != nil {
		return nil, err
	}
	return guardStep(h, d.Tick), nil
}

// Factory adapts New to the host runners.
func Factory(cfg Config) hal.AppFactory {
	return func(h hal.HAL) (func() error, error) {
		return New(h, cfg)
	}
}

// NewDriver builds the renderer and loop driver without the panic guard.
func NewDriver(h hal.HAL, cfg Config) (*loop.Driver, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: framebuffer: %w", hal.ErrNotImplemented)
	}
	mapper, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fb := h.Display().Framebuffer()
	r := &raster.Renderer{
		Width:   fb.Width(),
		Height:  fb.Height(),
		Mapper:  mapper,
		Workers: workers,
	}

	log := h.Logger()
	lcfg := loop.Config{Debug: cfg.Debug}
	if cfg.HUD {
		o, err := hud.New(hud.Font)
		if err != nil {
			// Non-fatal: run without the overlay.
			logf(log, "app: hud disabled: %v", err)
		} else {
			lcfg.Overlay = o
		}
	}

	if cfg.Debug {
		minX, maxX, minY, maxY := r.Extents()
		name := cfg.Palette
		if name == "" {
			name = "faithful"
		}
		logf(log, "app: %dx%d palette=%s workers=%d", r.Width, r.Height, name, workers)
		logf(log, "app: x range [%f, %f], y range [%f, %f]", minX, maxX, minY, maxY)
	}

	return loop.New(h, r, lcfg)
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
