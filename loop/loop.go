// Package loop drives the per-tick sample, render, present and quit cycle.
package loop

import (
	"errors"
	"fmt"

	"floorceil/draw"
	"floorceil/hal"
	"floorceil/raster"
)

// statsEvery is the cadence, in rendered frames, of the debug min/max line.
const statsEvery = 60

// State is the driver lifecycle.
type State uint8

const (
	Running State = iota
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// FrameRenderer fills a locked buffer for time t.
type FrameRenderer interface {
	RenderFrame(pix []uint32, stride int, t float64) (raster.Stats, error)
}

// Overlay draws on top of a rendered frame before it is presented.
type Overlay interface {
	DrawStats(c draw.Canvas, t float64, st raster.Stats)
}

type Config struct {
	Debug   bool
	Overlay Overlay
}

// Driver owns the frame loop state. It is not safe for concurrent use.
type Driver struct {
	log  hal.Logger
	fb   hal.Framebuffer
	keys <-chan hal.KeyEvent
	time hal.Time
	r    FrameRenderer
	cfg  Config

	state   State
	frames  uint64
	skipped uint64
	last    raster.Stats
}

// New wires a driver to the HAL's framebuffer, keyboard, clock and logger.
func New(h hal.HAL, r FrameRenderer, cfg Config) (*Driver, error) {
	if h == nil || r == nil {
		return nil, errors.New("loop: nil hal or renderer")
	}
	d := &Driver{log: h.Logger(), time: h.Time(), r: r, cfg: cfg}

	if disp := h.Display(); disp != nil {
		d.fb = disp.Framebuffer()
	}
	if d.fb == nil {
		return nil, fmt.Errorf("loop: framebuffer: %w", hal.ErrNotImplemented)
	}
	if f := d.fb.Format(); f != hal.PixelFormatARGB8888 {
		return nil, fmt.Errorf("loop: unsupported pixel format %v", f)
	}
	if d.time == nil {
		return nil, fmt.Errorf("loop: time: %w", hal.ErrNotImplemented)
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			d.keys = kbd.Events()
		}
	}
	return d, nil
}

func (d *Driver) State() State            { return d.state }
func (d *Driver) Frames() uint64          { return d.frames }
func (d *Driver) Skipped() uint64         { return d.skipped }
func (d *Driver) LastStats() raster.Stats { return d.last }

// Tick runs one iteration. It returns hal.ErrExit once the driver has
// stopped; every later call returns hal.ErrExit without rendering.
func (d *Driver) Tick() error {
	switch d.state {
	case Stopped:
		return hal.ErrExit
	case Stopping:
		d.state = Stopped
		return hal.ErrExit
	}

	if d.quitRequested() {
		d.state = Stopped
		return hal.ErrExit
	}

	t := d.time.Seconds()
	pix, stride, err := d.fb.Lock()
	if err != nil {
		d.skipped++
		return nil
	}

	st, err := d.r.RenderFrame(pix, stride, t)
	if err != nil {
		d.fb.Unlock()
		return fmt.Errorf("loop: render: %w", err)
	}
	if d.cfg.Overlay != nil {
		d.cfg.Overlay.DrawStats(draw.NewSurface(pix, stride, d.fb.Width(), d.fb.Height()), t, st)
	}
	d.fb.Unlock()

	if err := d.fb.Present(); err != nil {
		return fmt.Errorf("loop: present: %w", err)
	}

	d.frames++
	d.last = st
	if d.cfg.Debug && d.frames%statsEvery == 0 && d.log != nil {
		d.log.WriteLineString(fmt.Sprintf("loop: min: %f, max: %f, range: %f", st.Min, st.Max, st.Range()))
	}

	if d.quitRequested() {
		d.state = Stopping
	}
	return nil
}

// quitRequested drains pending key events and reports whether any asked to quit.
func (d *Driver) quitRequested() bool {
	if d.keys == nil {
		return false
	}
	quit := false
	for {
		select {
		case ev, ok := <-d.keys:
			if !ok {
				d.keys = nil
				return quit
			}
			if ev.IsQuit() {
				quit = true
			}
		default:
			return quit
		}
	}
}
