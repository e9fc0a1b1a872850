package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"floorceil/draw"
	"floorceil/hal"
	"floorceil/hud"

	"tinygo.org/x/tinyfont"
)

// guardStep turns a panic inside step into a logged error and a panic
// screen, so the runner can restore the terminal or close the window.
func guardStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	var lines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("floorceil panic: %v", v))
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	// A panic inside the frame can leave the buffer locked.
	fb.Unlock()
	fb.ClearRGB(255, 255, 255)
	pix, stride, err := fb.Lock()
	if err != nil {
		return
	}
	defer func() {
		fb.Unlock()
		_ = fb.Present()
	}()

	font := hud.Font
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int(outboxWidth)
	fontHeight := int(font.GetYAdvance())
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}

	s := draw.NewSurface(pix, stride, fb.Width(), fb.Height())
	text := []string{"PANIC:", fmt.Sprintf("%v", v)}
	if len(lines) > 0 {
		text = append(text, "STACK:")
		text = append(text, lines...)
	} else {
		text = append(text, "STACK: UNAVAILABLE")
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := max(fb.Width()/fontWidth, 1)
	y := 0
	for _, line := range text {
		for len(line) > 0 {
			if y+fontHeight > fb.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(s, font, 0, int16(y+fontHeight-1), chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
