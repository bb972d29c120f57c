package vbi

import (
	"errors"
	"testing"

	"github.com/nathanpbutler/opx/opxerr"
)

func samplePayload() [42]byte {
	var p [42]byte
	for i := range p {
		// ASCII space with the MSB set; 0xA0 has even parity, so
		// Decode's parity correction returns it as 0x20.
		p[i] = 0x20 | 0x80
	}
	p[0] = 0x15 // arbitrary non-space byte to exercise bit variety
	return p
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()
	payload := samplePayload()

	row := Encode(payload, false)
	if len(row) != LineLen {
		t.Fatalf("Encode row length = %d, want %d", len(row), LineLen)
	}

	got, err := Decode(row)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := payload
	for i := range want {
		want[i] = fixParity(want[i])
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestEncodeDecode_DoubleRoundTrip(t *testing.T) {
	t.Parallel()
	payload := samplePayload()

	row := Encode(payload, true)
	if len(row) != DoubleLen {
		t.Fatalf("Encode double row length = %d, want %d", len(row), DoubleLen)
	}

	got, err := Decode(row)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := payload
	for i := range want {
		want[i] = fixParity(want[i])
	}
	if got != want {
		t.Fatalf("double round trip mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestDecode_NoSignal(t *testing.T) {
	t.Parallel()
	flat := make([]byte, LineLen)
	for i := range flat {
		flat[i] = 0x80
	}
	_, err := Decode(flat)
	if !errors.Is(err, opxerr.ErrNoSignal) {
		t.Fatalf("got %v, want ErrNoSignal", err)
	}
}

func TestDecode_NoCRIFC(t *testing.T) {
	t.Parallel()
	row := make([]byte, LineLen)
	for i := range row {
		row[i] = High
	}
	row[0] = Low // avoid the flat-signal (NoSignal) rejection
	_, err := Decode(row)
	if !errors.Is(err, opxerr.ErrNoCRIFC) {
		t.Fatalf("got %v, want ErrNoCRIFC", err)
	}
}

func TestDecode_WrongLength(t *testing.T) {
	t.Parallel()
	if _, err := Decode(make([]byte, 100)); err == nil {
		t.Fatal("expected error for invalid row length")
	}
}

func TestDouble_Undouble_RoundTrip(t *testing.T) {
	t.Parallel()
	in := make([]byte, LineLen)
	for i := range in {
		in[i] = byte(i % 256)
	}
	doubled := Double(in)
	if len(doubled) != DoubleLen {
		t.Fatalf("Double length = %d, want %d", len(doubled), DoubleLen)
	}
	back := undouble(doubled)
	for i := range in {
		if back[i] != in[i] {
			t.Fatalf("undouble mismatch at %d: got %d want %d", i, back[i], in[i])
		}
	}
}
