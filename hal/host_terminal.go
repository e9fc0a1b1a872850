package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the top pixel as foreground and the bottom one as background.
const halfBlock = '▀'

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
}

// RunTerminal renders the framebuffer into the current terminal, two pixels
// per character cell. The framebuffer is sized from the terminal at startup.
// Log lines are held back until the terminal is restored.
func RunTerminal(ctx context.Context, newApp AppFactory, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("hal: terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("hal: terminal init: %w", err)
	}

	var logs bytes.Buffer
	err = runTerminal(ctx, screen, newApp, cfg, &logs)
	screen.Fini()
	os.Stdout.Write(logs.Bytes())
	return err
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp AppFactory, cfg TerminalConfig, logOut io.Writer) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("hal: terminal has no cells (%dx%d)", cols, rows)
	}

	h := newHostHAL(cols, rows*2, logOut, time.Now)
	step, err := buildStep(h, newApp)
	if err != nil {
		return err
	}

	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	b := &termBlitter{screen: screen, fb: h.fb}
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				h.kbd.push(translateKey(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if err := step(); err != nil {
				if errors.Is(err, ErrExit) {
					return nil
				}
				return err
			}
			b.blit()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func translateKey(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return KeyEvent{Code: KeyQuit, Press: true, Rune: 0x03}
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return KeyEvent{Code: KeySpace, Press: true, Rune: ' '}
		}
		return KeyEvent{Press: true, Rune: ev.Rune()}
	}
	return KeyEvent{Code: KeyUnknown, Press: true}
}

type termBlitter struct {
	screen tcell.Screen
	fb     *hostFramebuffer
	pix    []uint32
}

func (b *termBlitter) blit() {
	w, h := b.fb.width, b.fb.height
	if len(b.pix) != w*h {
		b.pix = make([]uint32, w*h)
	}
	if !b.fb.snapshot(b.pix) {
		return
	}
	for row := 0; row*2 < h; row++ {
		top := b.pix[row*2*w : row*2*w+w]
		var bottom []uint32
		if row*2+1 < h {
			bottom = b.pix[(row*2+1)*w : (row*2+1)*w+w]
		}
		for x := 0; x < w; x++ {
			st := tcell.StyleDefault.Foreground(termColor(top[x]))
			if bottom != nil {
				st = st.Background(termColor(bottom[x]))
			}
			b.screen.SetContent(x, row, halfBlock, nil, st)
		}
	}
	b.screen.Show()
}

func termColor(p uint32) tcell.Color {
	_, r, g, bl := unpackARGB(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
