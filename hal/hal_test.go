package hal

import "testing"

func TestKeyEventIsQuit(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want bool
	}{
		{KeyEvent{Code: KeyQuit, Press: true}, true},
		{KeyEvent{Code: KeyEscape, Press: true}, true},
		{KeyEvent{Code: KeyEscape, Press: false}, false},
		{KeyEvent{Press: true, Rune: 'q'}, true},
		{KeyEvent{Press: true, Rune: 'Q'}, true},
		{KeyEvent{Press: true, Rune: 'w'}, false},
		{KeyEvent{Code: KeyEnter, Press: true}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsQuit(); got != tt.want {
			t.Fatalf("%+v.IsQuit() = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestNRGBA(t *testing.T) {
	pix := []uint32{
		0xFF102030, 0x80405060, 0xDEADBEEF,
		0xFF000000, 0xFFFFFFFF, 0xDEADBEEF,
	}
	img := NRGBA(pix, 2, 2, 3)
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", b)
	}
	c := img.NRGBAAt(1, 0)
	if c.R != 0x40 || c.G != 0x50 || c.B != 0x60 || c.A != 0x80 {
		t.Fatalf("NRGBAAt(1,0) = %+v, want {64 80 96 128}", c)
	}
	c = img.NRGBAAt(1, 1)
	if c.R != 0xFF || c.A != 0xFF {
		t.Fatalf("NRGBAAt(1,1) = %+v, want white", c)
	}
}

func TestNewDefaults(t *testing.T) {
	h := New(0, 0)
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("framebuffer = %dx%d, want %dx%d", fb.Width(), fb.Height(), DefaultWidth, DefaultHeight)
	}
	if h.Input().Keyboard() == nil || h.Time() == nil || h.Logger() == nil {
		t.Fatal("host HAL is missing a device")
	}
}
