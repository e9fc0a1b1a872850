package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrExit is returned by a step function to end its runner cleanly.
	ErrExit = errors.New("exit")

	// ErrBufferBusy is returned by Lock while the framebuffer is locked.
	ErrBufferBusy = errors.New("framebuffer: already locked")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatARGB8888 is one uint32 per pixel: 0xAARRGGBB.
	PixelFormatARGB8888 PixelFormat = iota + 1
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatARGB8888:
		return "ARGB8888"
	default:
		return "unknown"
	}
}

// Framebuffer is a lockable pixel buffer plus a "present" hook.
//
// Pixels written between Lock and Unlock become visible on the next Present.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat

	// Lock hands out the back buffer and its row stride in pixels.
	Lock() (pix []uint32, stride int, err error)
	Unlock()

	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	KeySpace

	// KeyQuit is synthesized for window close requests and interrupts.
	KeyQuit
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// IsQuit reports whether the event asks the program to stop.
func (e KeyEvent) IsQuit() bool {
	if !e.Press {
		return false
	}
	switch {
	case e.Code == KeyQuit, e.Code == KeyEscape:
		return true
	case e.Rune == 'q' || e.Rune == 'Q':
		return true
	}
	return false
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides the animation clock.
type Time interface {
	// Seconds is monotonic and starts at zero when the HAL is created.
	Seconds() float64
}

// HAL provides the only contact point between the effect and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// AppFactory builds the per-tick step function for a HAL.
type AppFactory func(HAL) (func() error, error)
