package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

func packARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func unpackARGB(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// NRGBA converts a w x h block of packed ARGB pixels into an image.
func NRGBA(pix []uint32, w, h, stride int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRGBA(img.Pix, pix, w, h, stride)
	return img
}

// fillRGBA writes packed ARGB pixels as R,G,B,A bytes, the layout shared by
// image.NRGBA and ebiten's WritePixels.
func fillRGBA(dst []byte, pix []uint32, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w]
		j := y * w * 4
		for _, p := range row {
			a, r, g, b := unpackARGB(p)
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = a
			j += 4
		}
	}
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("png: mkdir %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png: create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("png: encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("png: close %q: %w", path, err)
	}
	return nil
}
