package palette

// Faithful is the blue to red gradient with its uncorrected band fractions.
//
// Bands two to four measure their fraction from the next band's start, so
// products leave [0,255] near band edges. Channel bytes keep the low 8 bits
// of the product truncated toward zero, which makes those products wrap.
func Faithful(v float64) uint32 {
	v = clamp01(v)

	var r, g, b uint8
	switch {
	case v < 0.10:
		t := v / 0.10
		r, g, b = 0, narrow(255*t), 255
	case v < 0.20:
		t := (v - 0.20) / 0.10
		r, g, b = 0, 255, narrow(255*(1-t))
	case v < 0.30:
		t := (v - 0.30) / 0.10
		r, g, b = narrow(255*t), 255, 0
	default:
		t := (v - 0.40) / 0.10
		r, g, b = 255, narrow(255*(1-t)), 0
	}
	return Pack(r, g, b)
}

// narrow truncates toward zero and wraps to a byte.
func narrow(f float64) uint8 {
	return uint8(int32(f))
}
