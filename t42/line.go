// Package t42 implements the T42 teletext line codec: magazine/row
// decoding via Hamming 8/4, page-number extraction, parity-checked text
// rendering through the G0–G3 character sets, and significance testing.
package t42

import (
	"strings"

	"github.com/nathanpbutler/opx/charset"
)

// LineLen is the fixed payload length of a T42 line.
const LineLen = 42

// Magazine decodes the magazine number from a T42 line's first byte pair.
// The two-byte magazine/row field is Hamming 8/4 encoded; the 3-bit
// magazine value is taken from the low bits of the decoded 16-bit value,
// with 0 substituted by 8.
func Magazine(b0, b1 byte) int {
	lo, _ := decodeHamming(b0)
	hi, _ := decodeHamming(b1)
	combined := uint16(lo) | uint16(hi)<<4
	mag := int(combined & 0x07)
	if mag == 0 {
		mag = 8
	}
	return mag
}

// Row decodes the row number from a T42 line's first two bytes: the
// Hamming-decoded 16-bit magazine/row value, shifted right 3.
func Row(b0, b1 byte) int {
	lo, _ := decodeHamming(b0)
	hi, _ := decodeHamming(b1)
	combined := uint16(lo) | uint16(hi)<<4
	return int(combined >> 3 & 0x1F)
}

// PageNumber extracts the two-hex-digit page number from a row-0 line's
// bytes[2:4] (units and tens nibbles, each Hamming 8/4 encoded). Returns
// ("", false) for non-header rows.
func PageNumber(line [LineLen]byte, row int) (string, bool) {
	if row != 0 {
		return "", false
	}
	units, _ := decodeHamming(line[2])
	tens, _ := decodeHamming(line[3])
	return strings.ToUpper(toHexDigit(tens) + toHexDigit(units)), true
}

func toHexDigit(nibble byte) string {
	const digits = "0123456789abcdef"
	return string(digits[nibble&0x0F])
}

// stripParity removes the MSB parity bit from a payload byte.
func stripParity(b byte) byte {
	return b & 0x7F
}

// checkParity reports whether b (including its MSB) has odd parity, as
// required for T42 payload bytes.
func checkParity(b byte) bool {
	v := b
	parity := byte(0)
	for v != 0 {
		parity ^= v & 1
		v >>= 1
	}
	return parity == 1
}

// Text renders bytes[2:42] of a T42 line as Unicode, stripping the parity
// bit from each byte and looking it up in G0 by default. isHeader prepends
// a "<mag><page> " display prefix for row-0 lines, matching the teletext
// convention of showing page context ahead of header text.
func Text(payload [40]byte, isHeader bool, magazine int, page string) string {
	var sb strings.Builder
	if isHeader {
		sb.WriteByte('0' + byte(magazine%10))
		if page != "" {
			sb.WriteString(page)
		}
		sb.WriteByte(' ')
	}
	for _, b := range payload {
		c := stripParity(b)
		r := charset.Rune(charset.G0, c, false)
		sb.WriteRune(r)
	}
	return sb.String()
}

// HasMeaningfulContent reports whether any parity-stripped payload byte in
// bytes[2:42] is printable and not a space or control character.
func HasMeaningfulContent(payload [40]byte) bool {
	for _, b := range payload {
		c := stripParity(b)
		if c > 0x20 && c < 0x7F {
			return true
		}
	}
	return false
}

// Line is a fully decoded T42 teletext line: magazine, row, optional page
// number, and rendered text.
type Line struct {
	Magazine   int
	Row        int
	Page       string
	HasPage    bool
	Text       string
	RawPayload [LineLen]byte
}

// ParseLine decodes a 42-byte T42 payload into a Line.
func ParseLine(payload [LineLen]byte) Line {
	mag := Magazine(payload[0], payload[1])
	row := Row(payload[0], payload[1])
	page, hasPage := PageNumber(payload, row)

	var body [40]byte
	copy(body[:], payload[2:])

	return Line{
		Magazine:   mag,
		Row:        row,
		Page:       page,
		HasPage:    hasPage,
		Text:       Text(body, row == 0, mag, page),
		RawPayload: payload,
	}
}
