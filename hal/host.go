package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with a width x height framebuffer, logging to stdout.
func New(width, height int) HAL {
	return newHostHAL(width, height, os.Stdout, time.Now)
}

func newHostHAL(width, height int, out io.Writer, now func() time.Time) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{w: out},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTimeWithClock(now),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// buildStep runs the factory against a freshly built host HAL.
func buildStep(h *hostHAL, newApp AppFactory) (func() error, error) {
	step, err := newApp(h)
	if err != nil {
		return nil, fmt.Errorf("hal: start app: %w", err)
	}
	if step == nil {
		return nil, fmt.Errorf("hal: start app: %w", ErrNotImplemented)
	}
	return step, nil
}
