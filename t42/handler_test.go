package t42

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestHandler_AdvancesTimecodeEveryLinesPerFrame(t *testing.T) {
	t.Parallel()
	var line [LineLen]byte
	for i := range line {
		line[i] = 0x20 | 0x80
	}

	var buf bytes.Buffer
	const frames = 3
	const linesPerFrame = 2
	for i := 0; i < frames*linesPerFrame; i++ {
		buf.Write(line[:])
	}

	h := NewHandler(&buf)
	h.LinesPerFrame = linesPerFrame

	ctx := context.Background()
	lastFrame := -1
	for i := 0; i < frames*linesPerFrame; i++ {
		l, err := h.Next(ctx)
		if err != nil {
			t.Fatalf("Next() at line %d: %v", i, err)
		}
		if l.Timecode == nil {
			t.Fatalf("line %d: nil timecode", i)
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

	if _, err := h.Next(ctx); err != io.EOF {
		t.Fatalf("expected io.EOF at stream end, got %v", err)
	}
}

func TestHandler_CancelledContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	buf.Write(make([]byte, LineLen))

	h := NewHandler(&buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Next(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
