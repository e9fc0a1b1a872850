package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// FixedStep advances the clock by exactly 1/Hz per tick instead of
	// reading wall time, so runs are reproducible.
	FixedStep bool

	// PNGPath, when set, receives the last presented frame on exit.
	PNGPath string
}

// RunHeadless runs the effect without opening a window.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clock := time.Unix(0, 0)
	now := time.Now
	if cfg.FixedStep {
		now = func() time.Time { return clock }
	}
	h := newHostHAL(cfg.Width, cfg.Height, os.Stdout, now)
	return runHeadless(ctx, h, newApp, cfg, func() { clock = clock.Add(d) })
}

func runHeadless(ctx context.Context, h *hostHAL, newApp AppFactory, cfg HeadlessConfig, advance func()) error {
	d := time.Second / time.Duration(cfg.Hz)
	step, err := buildStep(h, newApp)
	if err != nil {
		return err
	}

	err = runTicker(ctx, d, cfg.Ticks, func() error {
		if err := step(); err != nil {
			return err
		}
		advance()
		return nil
	})
	if errors.Is(err, ErrExit) {
		err = nil
	}

	if cfg.PNGPath != "" {
		if perr := writeFramePNG(h.fb, cfg.PNGPath); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

func runTicker(ctx context.Context, d time.Duration, limit uint64, step func() error) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return err
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}

func writeFramePNG(fb *hostFramebuffer, path string) error {
	pix := make([]uint32, fb.width*fb.height)
	if !fb.snapshot(pix) {
		return fmt.Errorf("png: no frame presented")
	}
	return WritePNG(path, NRGBA(pix, fb.width, fb.height, fb.width))
}
