package vbi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nathanpbutler/opx/media"
)

func TestHandler_DecodesThroughT42(t *testing.T) {
	t.Parallel()
	payload := samplePayload()
	row := Encode(payload, false)

	var buf bytes.Buffer
	buf.Write(row)

	h := NewHandler(&buf, LineLen)
	line, err := h.Next(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if line.Magazine < 0 {
		t.Errorf("expected a decoded magazine, got %d", line.Magazine)
	}
	if !bytes.Equal(line.Payload, row) {
		t.Error("Payload should be the raw VBI row, not the decoded T42 bytes")
	}
	if line.Kind != media.KindVBI {
		t.Errorf("Kind = %v, want KindVBI", line.Kind)
	}
}

func TestHandler_DoubleRecordLen(t *testing.T) {
	t.Parallel()
	payload := samplePayload()
	row := Encode(payload, true)

	var buf bytes.Buffer
	buf.Write(row)

	h := NewHandler(&buf, DoubleLen)
	line, err := h.Next(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(line.Payload) != DoubleLen {
		t.Errorf("Payload length = %d, want %d", len(line.Payload), DoubleLen)
	}
	if line.Magazine < 0 {
		t.Errorf("expected a decoded magazine for a doubled row, got %d", line.Magazine)
	}
}

func TestHandler_NoSignalRowStillYielded(t *testing.T) {
	t.Parallel()
	flat := make([]byte, LineLen)
	for i := range flat {
		flat[i] = 0x80
	}
	var buf bytes.Buffer
	buf.Write(flat)

	h := NewHandler(&buf, LineLen)
	line, err := h.Next(context.Background())
	if err != nil {
		t.Fatalf("Next should not fail for an undecodable row: %v", err)
	}
	if line.Magazine != -1 || line.Row != -1 {
		t.Errorf("expected unset magazine/row, got mag=%d row=%d", line.Magazine, line.Row)
	}
}

func TestHandler_AdvancesTimecodeEveryLinesPerFrame(t *testing.T) {
	t.Parallel()
	payload := samplePayload()
	row := Encode(payload, false)

	var buf bytes.Buffer
	const frames = 3
	const linesPerFrame = 2
	for i := 0; i < frames*linesPerFrame; i++ {
		buf.Write(row)
	}

	h := NewHandler(&buf, LineLen)
	h.LinesPerFrame = linesPerFrame

	ctx := context.Background()
	lastFrame := -1
	for i := 0; i < frames*linesPerFrame; i++ {
		l, err := h.Next(ctx)
		if err != nil {
			t.Fatalf("Next() at line %d: %v", i, err)
		}
		frame := l.Timecode.FrameNumber()
		wantFrame := i / linesPerFrame
		if frame != wantFrame {
			t.Fatalf("line %d: frame number = %d, want %d", i, frame, wantFrame)
		}
		lastFrame = frame
	}
	if lastFrame != frames-1 {
		t.Fatalf("final frame = %d, want %d", lastFrame, frames-1)
	}

	if _, err := h.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at stream end, got %v", err)
	}
}

func TestHandler_CancelledContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	buf.Write(make([]byte, LineLen))

	h := NewHandler(&buf, LineLen)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Next(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
