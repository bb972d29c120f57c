package stl

import (
	"encoding/binary"

	"github.com/nathanpbutler/opx/timecode"
)

const (
	ttiLen     = 128
	ttiTextLen = 112
)

// Colour codes embeddable in TTI text (EBU Tech 3264 section 6, alpha
// colour controls), provided for callers that build their own text runs.
const (
	ColourBlack = iota
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMagenta
	ColourCyan
	ColourWhite
)

const (
	startBox = 0x0B
	endBox   = 0x0A
	textPad  = 0x8F

	subtitleGroup    = 0x00
	cumulativeStatus = 0x00
	noExtension      = 0xFF
	justifyCentre    = 0x02
	defaultVertPos   = 20
)

// tti holds the fields needed to render one 128-byte TTI block.
type tti struct {
	number  uint16
	start   timecode.Timecode
	end     timecode.Timecode
	text    string
	vertPos byte
}

func encodeTCBytes(t timecode.Timecode) [4]byte {
	return [4]byte{byte(t.Hours()), byte(t.Minutes()), byte(t.Seconds()), byte(t.Frames())}
}

// encodeText renders s as STL text bytes: a start-box marker, the text
// (non-Latin-1 runes fall back to '?'), an end-box marker, the remainder
// padded with 0x8F. Text longer than the available space is truncated.
func encodeText(s string) [ttiTextLen]byte {
	var out [ttiTextLen]byte
	for i := range out {
		out[i] = textPad
	}
	out[0] = startBox
	pos := 1
	for _, r := range s {
		if pos >= ttiTextLen-1 {
			break
		}
		b := byte('?')
		if r <= 0xFF {
			b = byte(r)
		}
		out[pos] = b
		pos++
	}
	if pos < ttiTextLen {
		out[pos] = endBox
	}
	return out
}

func (b tti) encode() [ttiLen]byte {
	var out [ttiLen]byte
	out[0] = subtitleGroup
	binary.LittleEndian.PutUint16(out[1:3], b.number)
	out[3] = noExtension
	out[4] = cumulativeStatus

	startBytes := encodeTCBytes(b.start)
	endBytes := encodeTCBytes(b.end)
	copy(out[5:9], startBytes[:])
	copy(out[9:13], endBytes[:])

	out[13] = b.vertPos
	out[14] = justifyCentre
	out[15] = 0x00 // comment flag

	text := encodeText(b.text)
	copy(out[16:], text[:])

	return out
}
