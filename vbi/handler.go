package vbi

import (
	"context"
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/t42"
	"github.com/nathanpbutler/opx/timecode"
)

// Handler reads a headerless VBI sample stream (fixed 720- or 1440-byte
// records), synthesising a frame timecode by counting lines and advancing
// once per LinesPerFrame. It decodes each row through T42 immediately so
// Magazine/Row/Text are populated the same way t42.Handler populates them,
// while the Line's Payload and Kind stay the original VBI samples.
type Handler struct {
	r             io.Reader
	RecordLen     int // 720 (VBI) or 1440 (VBI_DOUBLE)
	LinesPerFrame int
	Timebase      timecode.Timebase
	DropFrame     bool

	seq       int64
	lineInFrm int
	cur       timecode.Timecode
	started   bool
}

// NewHandler creates a Handler reading fixed-size VBI records of recordLen
// bytes (720 or 1440) from r, with the default of 25 lines per frame.
func NewHandler(r io.Reader, recordLen int) *Handler {
	return &Handler{
		r:             r,
		RecordLen:     recordLen,
		LinesPerFrame: 25,
		Timebase:      timecode.Rate25,
	}
}

// Next reads and returns the next Line, or io.EOF when the stream is
// exhausted. ctx is checked before each read for cancellation. Rows that
// fail to decode (ErrNoSignal, ErrNoCRIFC) are still returned with their
// raw payload but Magazine/Row left at -1 and Text empty, since a VBI row
// can genuinely carry no usable signal (blanking, test lines) without that
// being a stream-fatal condition.
func (h *Handler) Next(ctx context.Context) (*media.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("vbi: %w", opxerr.ErrCancelled)
	}

	if !h.started {
		tc, err := timecode.FromFrames(0, h.Timebase, h.DropFrame)
		if err != nil {
			return nil, fmt.Errorf("vbi: %w", err)
		}
		h.cur = tc
		h.started = true
	}

	buf := make([]byte, h.RecordLen)
	if _, err := io.ReadFull(h.r, buf); err != nil {
		return nil, err
	}

	kind := media.KindVBI
	if h.RecordLen == media.KindVBIDouble.PayloadLen() {
		kind = media.KindVBIDouble
	}

	tc := h.cur
	line := &media.Line{
		Seq:      h.seq,
		Timecode: &tc,
		Magazine: -1,
		Row:      -1,
		Kind:     kind,
		Payload:  buf,
	}

	if t42Payload, err := Decode(buf); err == nil {
		parsed := t42.ParseLine(t42Payload)
		line.Magazine = parsed.Magazine
		line.Row = parsed.Row
		line.Text = parsed.Text
	}

	h.seq++
	h.lineInFrm++
	if h.lineInFrm >= h.LinesPerFrame {
		h.lineInFrm = 0
		h.cur = h.cur.Next()
	}

	return line, nil
}
