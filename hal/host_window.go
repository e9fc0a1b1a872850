//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"floorceil/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app returns ErrExit.
func RunWindow(newApp AppFactory, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	h := newHostHAL(cfg.Width, cfg.Height, os.Stdout, time.Now)
	step, err := buildStep(h, newApp)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, showFPS: cfg.ShowFPS}
	ebiten.SetWindowTitle(buildinfo.Title(cfg.Title))
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("hal: window: %w", err)
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []uint32
	rgba    []byte
	step    func() error
	showFPS bool
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if err := g.step(); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || len(g.scratch) != fb.width*fb.height {
		g.scratch = make([]uint32, fb.width*fb.height)
		g.rgba = make([]byte, fb.width*fb.height*4)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	if fb.snapshot(g.scratch) {
		fillRGBA(g.rgba, g.scratch, fb.width, fb.height, fb.width)
		g.fbImg.WritePixels(g.rgba)
	}
	screen.DrawImage(g.fbImg, nil)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
