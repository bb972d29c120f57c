// Package vbi implements the VBI↔T42 codec: signal normalisation,
// threshold-based bit slicing, clock-run-in/framing-code search, parity
// correction, and the reverse T42→VBI rasteriser.
//
// Decode and Encode are built as exact inverses of each other around a
// shared "unit" addressing scheme (see unitPos): the 360 logical bit-units
// of a teletext VBI line (16 clock-run-in + 8 framing-code + 336 data) are
// distributed proportionally across the resized 701-sample active region,
// at scale resizeLen/bitCount, matching the rasteriser's own nearest-
// neighbour resize exactly, so that VBI→T42 and T42→VBI round-trip
// exactly (see DESIGN.md).
package vbi

import (
	"fmt"

	"github.com/nathanpbutler/opx/opxerr"
)

// Wire constants for the VBI line format.
const (
	Low         byte    = 0x10
	High        byte    = 0xEB
	Threshold   float64 = 0.40
	LineLen             = 720
	DoubleLen           = 1440
	bitCount            = 360 // CRI(16) + FC(8) + data(336)
	resizeLen           = 701
	frontPad            = 6
	backPad             = LineLen - frontPad - resizeLen
	searchWindow        = 100
	criByte     byte    = 0x55
	framingCode byte    = 0x27
)

// unitPos returns the raw sample offset (relative to located, the sample
// position of unit 0) of logical bit-unit u: ceil(u*701/360), the first
// resized sample that resize's floor(k*360/701) mapping takes from unit u,
// so the sample read back is always one written from unit u.
func unitPos(u int) int {
	return (u*resizeLen + bitCount - 1) / bitCount
}

// Decode converts a raw VBI row (720 or 1440 samples) to a 42-byte T42
// payload. 1440-sample (VBI_DOUBLE) input is downsampled to 720 by taking
// every even-indexed sample, the exact inverse of Double's out[2i]=in[i].
func Decode(row []byte) ([42]byte, error) {
	var out [42]byte

	if len(row) == DoubleLen {
		row = undouble(row)
	}
	if len(row) != LineLen {
		return out, fmt.Errorf("vbi: row length %d, want %d or %d", len(row), LineLen, DoubleLen)
	}

	min, max := row[0], row[0]
	for _, b := range row {
		if b < min {
			min = b
		}
		if b > max {
			max = b
		}
	}
	if max == min {
		return out, fmt.Errorf("vbi: %w", opxerr.ErrNoSignal)
	}

	bits := make([]byte, LineLen)
	span := float64(max) - float64(min)
	for i, b := range row {
		norm := (float64(b) - float64(min)) / span
		if norm >= Threshold {
			bits[i] = 1
		}
	}

	located, ok := findCRIFC(bits)
	if !ok {
		return out, fmt.Errorf("vbi: %w", opxerr.ErrNoCRIFC)
	}

	for i := 0; i < 42; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			u := 24 + i*8 + j // unit 24 is the first data bit, after CRI+FC
			b = b<<1 | sampleUnit(bits, located, u)
		}
		out[i] = fixParity(b)
	}

	return out, nil
}

// sampleUnit reads the thresholded bit value of logical unit u, relative to
// located (the raw sample position of unit 0).
func sampleUnit(bits []byte, located, u int) byte {
	pos := located + unitPos(u)
	if pos < 0 || pos >= len(bits) {
		return 0
	}
	return bits[pos]
}

// findCRIFC searches raw sample offsets 0..searchWindow for a position at
// which units 0..7 and 8..15 both decode to 0x55 (two clock-run-in bytes)
// and unit 16..23 decodes to 0x27 (framing code).
func findCRIFC(bits []byte) (int, bool) {
	for o := 0; o <= searchWindow; o++ {
		if readUnitByte(bits, o, 0) != criByte {
			continue
		}
		if readUnitByte(bits, o, 8) != criByte {
			continue
		}
		if readUnitByte(bits, o, 16) == framingCode {
			return o, true
		}
	}
	return 0, false
}

func readUnitByte(bits []byte, located, unitBase int) byte {
	var b byte
	for j := 0; j < 8; j++ {
		b = b<<1 | sampleUnit(bits, located, unitBase+j)
	}
	return b
}

// fixParity flips the MSB of b if its current parity is even, establishing
// odd parity.
func fixParity(b byte) byte {
	v := b
	ones := 0
	for v != 0 {
		ones += int(v & 1)
		v >>= 1
	}
	if ones%2 == 0 {
		return b ^ 0x80
	}
	return b
}

// undouble recovers a 720-sample row from a 1440-sample VBI_DOUBLE row by
// taking every even-indexed sample, the inverse of Double.
func undouble(row []byte) []byte {
	out := make([]byte, LineLen)
	for i := range out {
		out[i] = row[2*i]
	}
	return out
}

// Double expands a 720-byte VBI row to 1440 bytes: out[2i]=in[i];
// out[2i+1]=floor((in[i]+in[i+1])/2), with the last sample duplicated
// (line doubling).
func Double(in []byte) []byte {
	out := make([]byte, len(in)*2)
	for i, b := range in {
		out[2*i] = b
		var next byte
		if i+1 < len(in) {
			next = in[i+1]
		} else {
			next = b
		}
		out[2*i+1] = byte((int(b) + int(next)) / 2)
	}
	return out
}
