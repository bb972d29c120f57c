package mxf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/nathanpbutler/opx/opxerr"
)

func buildANCLine(number int, wrapping, sampleCoding byte, sampleCount int, payload []byte) []byte {
	header := make([]byte, ancLineHeaderLen)
	binary.BigEndian.PutUint16(header[0:2], uint16(number))
	header[2] = wrapping
	header[3] = sampleCoding
	binary.BigEndian.PutUint16(header[4:6], uint16(sampleCount))
	binary.BigEndian.PutUint16(header[8:10], uint16(len(payload)))
	header[13] = 0x01
	return append(header, payload...)
}

func buildANCPacket(lines ...[]byte) []byte {
	var buf bytes.Buffer
	var count [2]byte
	binary.BigEndian.PutUint16(count[:], uint16(len(lines)))
	buf.Write(count[:])
	for _, l := range lines {
		buf.Write(l)
	}
	return buf.Bytes()
}

func TestParseANCPacket_SingleLine(t *testing.T) {
	t.Parallel()
	payload := make([]byte, 42)
	for i := range payload {
		payload[i] = byte(i)
	}
	data := buildANCPacket(buildANCLine(9, 1, 2, 720, payload))

	lines, err := ParseANCPacket(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Number != 9 || l.Wrapping != 1 || l.SampleCoding != 2 || l.SampleCount != 720 {
		t.Errorf("header fields = %+v", l)
	}
	if !bytes.Equal(l.Payload, payload) {
		t.Errorf("payload mismatch")
	}
}

func TestParseANCPacket_MultipleLines(t *testing.T) {
	t.Parallel()
	data := buildANCPacket(
		buildANCLine(1, 0, 0, 1, []byte{0xAA}),
		buildANCLine(2, 0, 0, 2, []byte{0xBB, 0xCC}),
		buildANCLine(3, 0, 0, 3, []byte{0xDD, 0xEE, 0xFF}),
	)
	lines, err := ParseANCPacket(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[2].Number != 3 || !bytes.Equal(lines[2].Payload, []byte{0xDD, 0xEE, 0xFF}) {
		t.Errorf("third line = %+v", lines[2])
	}
}

func TestParseANCPacket_BadLineHeader(t *testing.T) {
	t.Parallel()
	line := buildANCLine(1, 0, 0, 1, []byte{0xAA})
	line[13] = 0x00 // break the terminator byte
	data := buildANCPacket(line)

	_, err := ParseANCPacket(data)
	if !errors.Is(err, opxerr.ErrBadLineHeader) {
		t.Errorf("got %v, want ErrBadLineHeader", err)
	}
}

func TestParseANCPacket_InvalidLineLength_Zero(t *testing.T) {
	t.Parallel()
	line := buildANCLine(1, 0, 0, 0, nil)
	data := buildANCPacket(line)

	_, err := ParseANCPacket(data)
	if !errors.Is(err, opxerr.ErrInvalidLineLength) {
		t.Errorf("got %v, want ErrInvalidLineLength", err)
	}
}

func TestParseANCPacket_InvalidLineLength_TooLong(t *testing.T) {
	t.Parallel()
	header := make([]byte, ancLineHeaderLen)
	binary.BigEndian.PutUint16(header[8:10], 10001)
	header[13] = 0x01
	data := buildANCPacket(header)

	_, err := ParseANCPacket(data)
	if !errors.Is(err, opxerr.ErrInvalidLineLength) {
		t.Errorf("got %v, want ErrInvalidLineLength", err)
	}
}

func TestParseANCPacket_TruncatedHeader(t *testing.T) {
	t.Parallel()
	data := []byte{0x00, 0x01, 0x00, 0x01, 0x02}
	_, err := ParseANCPacket(data)
	if !errors.Is(err, opxerr.ErrBadLineHeader) {
		t.Errorf("got %v, want ErrBadLineHeader", err)
	}
}

func TestANCLine_ToMediaLine_T42(t *testing.T) {
	t.Parallel()
	payload := make([]byte, 42)
	l := ANCLine{Number: 1, SampleCount: 42, Payload: payload}
	ml := l.toMediaLine(5, nil)
	if ml.Seq != 5 {
		t.Errorf("Seq = %d, want 5", ml.Seq)
	}
	if ml.Samples != 42 {
		t.Errorf("Samples = %d, want 42", ml.Samples)
	}
}

func TestANCLine_ToMediaLine_VBI(t *testing.T) {
	t.Parallel()
	l := ANCLine{Payload: make([]byte, 720)}
	ml := l.toMediaLine(0, nil)
	if ml.Magazine != -1 || ml.Row != -1 {
		t.Errorf("expected unset magazine/row for raw VBI, got %+v", ml)
	}
}
