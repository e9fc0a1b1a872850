package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"floorceil/app"
	"floorceil/hal"
	"floorceil/palette"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		term     hal.TerminalConfig
		cfg      app.Config
		useTerm  bool
		showFPS  bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&useTerm, "term", false, "Render into the terminal with half-block cells.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&headless.FixedStep, "fixed-step", false, "Advance the headless clock by exactly 1/hz per tick.")
	flag.StringVar(&headless.PNGPath, "png", "", "Write the last presented frame to this PNG file (headless mode).")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&window.Scale, "scale", 2, "Window scale factor.")
	flag.BoolVar(&showFPS, "fps", false, "Print the actual FPS in the window corner.")
	flag.StringVar(&cfg.Palette, "palette", "faithful", "Color palette: "+strings.Join(palette.Names(), ", ")+".")
	flag.IntVar(&cfg.Workers, "workers", 0, "Row bands rendered in parallel (0 = one per CPU).")
	flag.BoolVar(&cfg.Debug, "debug", false, "Log coordinate extents and min/max every 60 frames.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Draw the diagnostics panel over the frame.")
	flag.Parse()

	if _, err := palette.Lookup(cfg.Palette); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	window.ShowFPS = showFPS
	headless.Width, headless.Height = window.Width, window.Height
	term.Hz, term.Ticks = headless.Hz, headless.Ticks

	newApp := app.Factory(cfg)

	if headless.Enabled || useTerm {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var err error
		if useTerm {
			err = hal.RunTerminal(ctx, newApp, term)
		} else {
			err = hal.RunHeadless(ctx, newApp, headless)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
