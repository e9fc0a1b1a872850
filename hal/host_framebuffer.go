package hal

import (
	"errors"
	"sync"
)

var errPresentLocked = errors.New("framebuffer: present while locked")

// hostFramebuffer keeps a back buffer for the renderer and a front buffer
// for whatever blits the frame out (window, terminal, PNG).
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	back   []uint32
	front  []uint32
	locked bool
	ready  bool
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: width,
		back:   make([]uint32, width*height),
		front:  make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatARGB8888 }

func (f *hostFramebuffer) Lock() ([]uint32, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return nil, 0, ErrBufferBusy
	}
	f.locked = true
	return f.back, f.stride, nil
}

func (f *hostFramebuffer) Unlock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locked = false
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return errPresentLocked
	}
	copy(f.front, f.back)
	f.ready = true
	f.frames++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := packARGB(0xFF, r, g, b)
	for i := range f.back {
		f.back[i] = pixel
	}
}

// snapshot copies the last presented frame into dst and reports whether
// any frame has been presented yet.
func (f *hostFramebuffer) snapshot(dst []uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.ready
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}
