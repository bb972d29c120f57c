package stl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/timecode"
)

func lineAt(t *testing.T, frame int, text string) *media.Line {
	t.Helper()
	tc, err := timecode.FromFrames(frame, timecode.Rate25, false)
	if err != nil {
		t.Fatal(err)
	}
	return &media.Line{Timecode: &tc, Text: text}
}

func TestEmitter_EmptyStreamWritesHeaderOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEmitter(&buf, timecode.Rate25, false)
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != gsiLen {
		t.Fatalf("output length = %d, want %d (GSI only)", buf.Len(), gsiLen)
	}
}

func TestEmitter_MergesIdenticalText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEmitter(&buf, timecode.Rate25, false)

	for i := 0; i < 5; i++ {
		if err := e.Emit(lineAt(t, i, "same caption")); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	if len(e.blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(e.blocks))
	}
	b := e.blocks[0]
	if b.start.FrameNumber() != 0 {
		t.Errorf("start frame = %d, want 0", b.start.FrameNumber())
	}
	if b.end.FrameNumber() != 5 {
		t.Errorf("end frame = %d, want 5 (last line + 1)", b.end.FrameNumber())
	}
}

func TestEmitter_ClosesOnTextChange(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEmitter(&buf, timecode.Rate25, false)

	if err := e.Emit(lineAt(t, 0, "first")); err != nil {
		t.Fatal(err)
	}
	if err := e.Emit(lineAt(t, 1, "first")); err != nil {
		t.Fatal(err)
	}
	if err := e.Emit(lineAt(t, 2, "second")); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	if len(e.blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(e.blocks))
	}
	if e.blocks[0].text != "first" || e.blocks[1].text != "second" {
		t.Errorf("texts = %q, %q", e.blocks[0].text, e.blocks[1].text)
	}
}

func TestEmitter_ClosesOnBlank(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEmitter(&buf, timecode.Rate25, false)

	if err := e.Emit(lineAt(t, 0, "caption")); err != nil {
		t.Fatal(err)
	}
	if err := e.Emit(lineAt(t, 1, "")); err != nil {
		t.Fatal(err)
	}
	if err := e.Emit(lineAt(t, 2, "caption")); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	if len(e.blocks) != 2 {
		t.Fatalf("blocks = %d, want 2 (blank line splits the two runs)", len(e.blocks))
	}
}

func TestEmitter_CloseWritesGSIThenTTIBlocks(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := NewEmitter(&buf, timecode.Rate25, false)

	if err := e.Emit(lineAt(t, 0, "one")); err != nil {
		t.Fatal(err)
	}
	if err := e.Emit(lineAt(t, 1, "two")); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	wantLen := gsiLen + 2*ttiLen
	if len(out) != wantLen {
		t.Fatalf("output length = %d, want %d", len(out), wantLen)
	}

	if got := string(out[offTNB : offTNB+5]); got != "00002" {
		t.Errorf("GSI TNB = %q, want 00002", got)
	}

	firstTTI := out[gsiLen : gsiLen+ttiLen]
	if num := binary.LittleEndian.Uint16(firstTTI[1:3]); num != 0 {
		t.Errorf("first TTI subtitle number = %d, want 0", num)
	}
	secondTTI := out[gsiLen+ttiLen:]
	if num := binary.LittleEndian.Uint16(secondTTI[1:3]); num != 1 {
		t.Errorf("second TTI subtitle number = %d, want 1", num)
	}
}
