package t42

// hammingTable maps each of the 256 possible encoded bytes to its decoded
// 4-bit value and an error flag, per the standard EBU Hamming 8/4 code used
// throughout teletext (ETS 300 706 §7.2). Built at init time from the
// generator/parity-check structure rather than listed as a literal 256-row
// table, since the code is fully determined by its four data bits and four
// parity bits.
var hammingTable [256][2]byte // [1]=0 clean, [1]=1 corrected, [1]=2 uncorrectable

func init() {
	// Hamming 8/4 bit layout (D1..D4 data, P1..P4 parity), LSB first:
	// b0=P1 b1=D1 b2=P2 b3=D2 b4=P3 b5=D3 b6=P4 b7=D4
	// P1 covers D1,D2,D4; P2 covers D1,D3,D4; P3 covers D2,D3,D4;
	// P4 is overall parity across all 8 bits.
	for b := 0; b < 256; b++ {
		byt := byte(b)
		p1 := bit(byt, 0)
		d1 := bit(byt, 1)
		p2 := bit(byt, 2)
		d2 := bit(byt, 3)
		p3 := bit(byt, 4)
		d3 := bit(byt, 5)
		p4 := bit(byt, 6)
		d4 := bit(byt, 7)

		c1 := p1 ^ d1 ^ d2 ^ d4
		c2 := p2 ^ d1 ^ d3 ^ d4
		c3 := p3 ^ d2 ^ d3 ^ d4
		syndrome := c1 | c2<<1 | c3<<2

		overall := p1 ^ d1 ^ p2 ^ d2 ^ p3 ^ d3 ^ p4 ^ d4

		value := d1 | d2<<1 | d3<<2 | d4<<3

		switch {
		case syndrome == 0 && overall == 0:
			hammingTable[b] = [2]byte{value, 0}
		case overall == 1:
			// Single-bit error, correctable via the syndrome: flip the bit
			// the syndrome identifies and recompute the data nibble.
			corrected := byt ^ (1 << uint(syndromeToBitPos(syndrome)))
			cd1 := bit(corrected, 1)
			cd2 := bit(corrected, 3)
			cd3 := bit(corrected, 5)
			cd4 := bit(corrected, 7)
			hammingTable[b] = [2]byte{cd1 | cd2<<1 | cd3<<2 | cd4<<3, 1}
		default:
			hammingTable[b] = [2]byte{value, 2}
		}
	}
}

func bit(b byte, pos uint) byte {
	return (b >> pos) & 1
}

// syndromeToBitPos maps a 3-bit syndrome (c1,c2,c3) to the bit position
// (0-indexed from LSB) of the byte it identifies as wrong, for the parity
// layout used above. Syndrome 0 means no single-bit error (overall parity
// alone is wrong, i.e. the parity bit P4 itself).
func syndromeToBitPos(syndrome byte) uint {
	switch syndrome {
	case 0b001:
		return 0 // P1
	case 0b010:
		return 2 // P2
	case 0b011:
		return 1 // D1
	case 0b100:
		return 4 // P3
	case 0b101:
		return 3 // D2
	case 0b110:
		return 5 // D3
	case 0b111:
		return 7 // D4
	default: // 0b000
		return 6 // P4
	}
}

// decodeHamming decodes one Hamming 8/4 byte, returning its 4-bit value and
// whether the byte had an uncorrectable error.
func decodeHamming(b byte) (value byte, uncorrectable bool) {
	entry := hammingTable[b]
	return entry[0], entry[1] == 2
}
