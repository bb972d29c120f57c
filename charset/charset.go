// Package charset holds the teletext G0–G3 character-set tables (ETS 300
// 706) used to render decoded T42 payload bytes as Unicode text, and the
// default Latin mapping used by the EBU-STL emitter.
package charset

// Set identifies one of the four teletext graphics sets addressable from a
// T42 row.
type Set int

const (
	G0 Set = iota // alphanumerics (national option)
	G1            // mosaics (contiguous)
	G2            // supplementary Latin/national symbols
	G3            // mosaics (separated) / line drawing
)

// g0Default is the English national-option G0 set: ASCII 0x20..0x7F with
// the teletext symbol substitutions.
var g0Default = buildG0Default()

func buildG0Default() [96]rune {
	var t [96]rune
	for i := range t {
		t[i] = rune(0x20 + i)
	}
	set := func(code byte, r rune) { t[code-0x20] = r }
	set(0x23, '£')
	set(0x5B, '←')
	set(0x5C, '½')
	set(0x5D, '→')
	set(0x5E, '↑')
	set(0x5F, '#')
	set(0x60, '—')
	set(0x7B, '¼')
	set(0x7C, '‖')
	set(0x7D, '¾')
	set(0x7E, '÷')
	set(0x7F, '■')
	return t
}

// g0Cyrillic is the Cyrillic national-option G0 set (ETS 300 706 Annex).
// Positions not specifically remapped fall back to Latin (matching the
// behaviour of receivers presented with an unsupported code page).
var g0Cyrillic = buildG0Cyrillic()

func buildG0Cyrillic() [96]rune {
	t := g0Default
	cyr := map[byte]rune{
		0x40: 'ю', 0x41: 'а', 0x42: 'б', 0x43: 'ц', 0x44: 'д', 0x45: 'е',
		0x46: 'ф', 0x47: 'г', 0x48: 'х', 0x49: 'и', 0x4A: 'й', 0x4B: 'к',
		0x4C: 'л', 0x4D: 'м', 0x4E: 'н', 0x4F: 'о', 0x50: 'п', 0x51: 'я',
		0x52: 'р', 0x53: 'с', 0x54: 'т', 0x55: 'у', 0x56: 'ж', 0x57: 'в',
		0x58: 'ь', 0x59: 'ы', 0x5A: 'з', 0x5B: 'ш', 0x5C: 'э', 0x5D: 'щ',
		0x5E: 'ч', 0x5F: 'ъ', 0x60: 'Ю', 0x61: 'А', 0x62: 'Б', 0x63: 'Ц',
		0x64: 'Д', 0x65: 'Е', 0x66: 'Ф', 0x67: 'Г', 0x68: 'Х', 0x69: 'И',
		0x6A: 'Й', 0x6B: 'К', 0x6C: 'Л', 0x6D: 'М', 0x6E: 'Н', 0x6F: 'О',
		0x70: 'П', 0x71: 'Я', 0x72: 'Р', 0x73: 'С', 0x74: 'Т', 0x75: 'У',
		0x76: 'Ж', 0x77: 'В', 0x78: 'Ь', 0x79: 'Ы', 0x7A: 'З', 0x7B: 'Ш',
		0x7C: 'Э', 0x7D: 'Щ', 0x7E: 'Ч',
	}
	for code, r := range cyr {
		t[code-0x20] = r
	}
	return t
}

// g2Latin is the supplementary Latin set (diacritics and currency symbols).
var g2Latin = buildG2Latin()

func buildG2Latin() [96]rune {
	var t [96]rune
	for i := range t {
		t[i] = rune(0x20 + i)
	}
	set := func(code byte, r rune) { t[code-0x20] = r }
	set(0x21, '¡')
	set(0x22, '¢')
	set(0x23, '£')
	set(0x24, '$')
	set(0x25, '¥')
	set(0x26, '#')
	set(0x27, '§')
	set(0x28, '¤')
	set(0x2C, '‰')
	set(0x2F, '¿')
	set(0x40, '‾')
	set(0x5B, 'Ç')
	set(0x5C, 'ü')
	set(0x5D, 'é')
	set(0x5E, 'â')
	set(0x5F, 'ä')
	set(0x60, 'à')
	set(0x7B, 'ê')
	set(0x7C, 'ñ')
	set(0x7D, 'è')
	set(0x7E, 'û')
	return t
}

// mosaicBlock maps a 6-bit teletext mosaic pattern (sextant bit order,
// bit0=top-left .. bit5=bottom-right, excluding the middle-row split used
// by separated mosaics) to the Unicode Symbols for Legacy Computing block
// sextant glyph with the same filled cells. code 0x00 and 0x3F map to
// blank and full block respectively.
func mosaicBlock(sixbits byte) rune {
	switch sixbits {
	case 0x00:
		return ' '
	case 0x3F:
		return '█'
	default:
		// U+1FB00 is sextant pattern 000001 (top-left only); patterns
		// increase with the standard Unicode sextant bit ordering
		// (top-left, top-right, mid-left, mid-right, bottom-left,
		// bottom-right), which matches teletext's mosaic bit order. The
		// sextant block skips the two half-block patterns 010101 (left
		// column, U+258C) and 101010 (right column, U+2590).
		switch sixbits {
		case 0x15:
			return '▌'
		case 0x2A:
			return '▐'
		}
		off := int(sixbits) - 1
		if sixbits > 0x15 {
			off--
		}
		if sixbits > 0x2A {
			off--
		}
		return rune(0x1FB00 + off)
	}
}

// g1Mosaics and g3Mosaics are built algorithmically from the teletext
// mosaic bit pattern rather than listed byte-for-byte: bits 0..5 of the
// low 6 bits of the code (0x20..0x3F, 0x60..0x7F) select the filled
// sextant cells; bit positions 0x20-0x3F without bit 0x20 set render as
// G0 alphanumerics passthrough on many receivers, but per ETS 300 706 the
// full 0x20..0x7F range (minus 0x20 and 0x7F, reserved) is mosaic.
func mosaicSet() [96]rune {
	var t [96]rune
	for i := range t {
		code := byte(0x20 + i)
		bits := code & 0x3F
		t[i] = mosaicBlock(bits)
	}
	t[0] = ' '               // 0x20 space
	t[0x7F-0x20] = mosaicBlock(0x3F)
	return t
}

var g1Mosaics = mosaicSet()
var g3Mosaics = mosaicSet() // separated mosaics share the sextant mapping here

// Rune returns the Unicode rune for parity-stripped byte b (0x20..0x7F; out
// of range values return the replacement character) in the given set.
// cyrillic selects the Cyrillic G0 national option instead of the default
// English one; it is ignored for sets other than G0.
func Rune(set Set, b byte, cyrillic bool) rune {
	if b < 0x20 || b > 0x7F {
		return '�'
	}
	idx := int(b - 0x20)
	switch set {
	case G0:
		if cyrillic {
			return g0Cyrillic[idx]
		}
		return g0Default[idx]
	case G1:
		return g1Mosaics[idx]
	case G2:
		return g2Latin[idx]
	case G3:
		return g3Mosaics[idx]
	default:
		return '�'
	}
}
