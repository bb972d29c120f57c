package mpegts

import "testing"

// buildTeletextPES constructs a minimal teletext PES payload containing a
// single non-subtitle data unit wrapping the given natural-order T42 bytes.
func buildTeletextPES(t42Payload [42]byte) []byte {
	body := make([]byte, 44)
	body[0] = 0x00 // field_parity=0, line_offset=0
	body[1] = reverseBits(0x27)
	for i, b := range t42Payload {
		body[2+i] = reverseBits(b)
	}

	data := []byte{dataIdentifier, unitIDNonSub, byte(len(body))}
	data = append(data, body...)
	return data
}

func TestParseTeletextPES_RoundTrip(t *testing.T) {
	t.Parallel()
	var payload [42]byte
	for i := range payload {
		payload[i] = byte(i*7 + 1)
	}

	data := buildTeletextPES(payload)
	units, err := ParseTeletextPES(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	if units[0].Payload != payload {
		t.Errorf("payload mismatch:\n got %v\nwant %v", units[0].Payload, payload)
	}
	if units[0].Subtitle {
		t.Error("expected non-subtitle data unit")
	}
}

func TestParseTeletextPES_MissingDataIdentifier(t *testing.T) {
	t.Parallel()
	_, err := ParseTeletextPES([]byte{0x00, 0x02, 44})
	if err == nil {
		t.Fatal("expected error for missing data_identifier")
	}
}

func TestParseTeletextPES_RejectsBadFraming(t *testing.T) {
	t.Parallel()
	var payload [42]byte
	data := buildTeletextPES(payload)
	data[4] = 0x00 // corrupt the (reversed) framing code byte

	units, err := ParseTeletextPES(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 0 {
		t.Errorf("expected 0 units for corrupt framing code, got %d", len(units))
	}
}

func TestReverseBits(t *testing.T) {
	t.Parallel()
	cases := map[byte]byte{
		0x00: 0x00,
		0xFF: 0xFF,
		0x01: 0x80,
		0x27: 0xE4,
	}
	for in, want := range cases {
		if got := reverseBits(in); got != want {
			t.Errorf("reverseBits(0x%02X) = 0x%02X, want 0x%02X", in, got, want)
		}
	}
}
