package vbi

// Encode rasterises a 42-byte T42 payload into a 720-byte VBI row (or a
// 1440-byte VBI_DOUBLE row if double is true), the inverse of Decode.
//
// Bits are laid out one per logical unit (CRI, then FC, then the 336
// payload bits, MSB-first per byte) before the 360→701 resize, exactly
// the layout Decode's unitPos projects back onto, chosen so that
// Decode(Encode(t42)) is an exact round trip — see DESIGN.md.
func Encode(payload [42]byte, double bool) []byte {
	bits := make([]byte, bitCount)
	pos := 0
	pos = putByteBits(bits, pos, criByte)
	pos = putByteBits(bits, pos, criByte)
	pos = putByteBits(bits, pos, framingCode)
	for _, b := range payload {
		pos = putByteBits(bits, pos, b)
	}

	samples := make([]byte, bitCount)
	for i, bit := range bits {
		if bit == 1 {
			samples[i] = High
		} else {
			samples[i] = Low
		}
	}

	resized := resize(samples, resizeLen)

	line := make([]byte, LineLen)
	for i := 0; i < frontPad; i++ {
		line[i] = Low
	}
	copy(line[frontPad:frontPad+resizeLen], resized)
	for i := frontPad + resizeLen; i < LineLen; i++ {
		line[i] = Low
	}

	if double {
		return Double(line)
	}
	return line
}

// putByteBits writes b's 8 bits MSB-first into bits starting at pos,
// returning the next free position.
func putByteBits(bits []byte, pos int, b byte) int {
	for i := 7; i >= 0; i-- {
		bits[pos] = (b >> uint(i)) & 1
		pos++
	}
	return pos
}

// resize scales src to outLen samples using nearest-neighbour-with-
// fractional-accumulator resampling at scale factor len(src)/outLen.
func resize(src []byte, outLen int) []byte {
	out := make([]byte, outLen)
	scale := float64(len(src)) / float64(outLen)
	acc := 0.0
	for i := range out {
		idx := int(acc)
		if idx >= len(src) {
			idx = len(src) - 1
		}
		out[i] = src[idx]
		acc += scale
	}
	return out
}
