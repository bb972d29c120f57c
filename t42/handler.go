package t42

import (
	"context"
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/timecode"
)

// Handler reads a headerless T42 line stream, synthesizing a frame
// timecode by counting lines and advancing once per LinesPerFrame.
type Handler struct {
	r             io.Reader
	LinesPerFrame int
	Timebase      timecode.Timebase
	DropFrame     bool

	seq       int64
	lineInFrm int
	cur       timecode.Timecode
	started   bool
}

// NewHandler creates a Handler reading T42 lines from r, with the default
// of 25 lines per frame.
func NewHandler(r io.Reader) *Handler {
	return &Handler{
		r:             r,
		LinesPerFrame: 25,
		Timebase:      timecode.Rate25,
	}
}

// Next reads and returns the next Line, or io.EOF when the stream is
// exhausted. ctx is checked before each read for cancellation.
func (h *Handler) Next(ctx context.Context) (*media.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("t42: %w", opxerr.ErrCancelled)
	}

	if !h.started {
		tc, err := timecode.FromFrames(0, h.Timebase, h.DropFrame)
		if err != nil {
			return nil, fmt.Errorf("t42: %w", err)
		}
		h.cur = tc
		h.started = true
	}

	var buf [LineLen]byte
	if _, err := io.ReadFull(h.r, buf[:]); err != nil {
		return nil, err
	}

	parsed := ParseLine(buf)

	tc := h.cur
	line := &media.Line{
		Seq:      h.seq,
		Timecode: &tc,
		Magazine: parsed.Magazine,
		Row:      parsed.Row,
		Kind:     media.KindT42,
		Payload:  append([]byte(nil), buf[:]...),
		Text:     parsed.Text,
	}

	h.seq++
	h.lineInFrm++
	if h.lineInFrm >= h.LinesPerFrame {
		h.lineInFrm = 0
		h.cur = h.cur.Next()
	}

	return line, nil
}
