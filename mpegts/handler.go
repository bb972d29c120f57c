package mpegts

import (
	"context"
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/t42"
	"github.com/nathanpbutler/opx/timecode"
)

// Handler reads a transport stream, locates the DVB teletext elementary
// stream from its PMT, and emits T42 lines timestamped from the teletext
// PES packets' PTS.
type Handler struct {
	dmx         *Demuxer
	Timebase    timecode.Timebase
	DropFrame   bool
	teletextPID uint16
	pidKnown    bool
	seq         int64
	pending     []*media.Line

	havePTSOrigin bool
	ptsOrigin     int64 // first teletext PES's PTS, in 90kHz ticks
}

// NewHandler creates a Handler reading a transport stream from r with the
// given packet size (188 or 192; use DetectPacketSize to determine it).
func NewHandler(ctx context.Context, r io.Reader, packetSize int) *Handler {
	return &Handler{
		dmx:      NewDemuxer(ctx, r, DemuxerOptPacketSize(packetSize)),
		Timebase: timecode.Rate25,
	}
}

// Next returns the next decoded teletext line, or io.EOF when the stream is
// exhausted or no teletext elementary stream is ever found.
func (h *Handler) Next(ctx context.Context) (*media.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mpegts: %w", opxerr.ErrCancelled)
	}

	for {
		if len(h.pending) > 0 {
			l := h.pending[0]
			h.pending = h.pending[1:]
			return l, nil
		}

		data, err := h.dmx.NextData()
		if err != nil {
			return nil, err
		}

		if data.PMT != nil && !h.pidKnown {
			for _, es := range data.PMT.ElementaryStreams {
				if es.IsTeletext {
					h.teletextPID = es.ElementaryPID
					h.pidKnown = true
					break
				}
			}
			continue
		}

		if data.PES == nil || !h.pidKnown {
			continue
		}
		if data.FirstPacket == nil || data.FirstPacket.Header.PID != h.teletextPID {
			continue
		}

		units, err := ParseTeletextPES(data.PES.Data)
		if err != nil || len(units) == 0 {
			continue
		}

		tc := h.timecodeForPES(data.PES)
		for _, u := range units {
			parsed := t42.ParseLine(u.Payload)
			t := tc
			h.pending = append(h.pending, &media.Line{
				Seq:      h.seq,
				Timecode: &t,
				Magazine: parsed.Magazine,
				Row:      parsed.Row,
				Kind:     media.KindT42,
				Payload:  append([]byte(nil), u.Payload[:]...),
				Text:     parsed.Text,
			})
			h.seq++
		}
	}
}

// timecodeForPES converts a PES packet's PTS to a Timecode at h.Timebase.
// The first PTS this Handler ever sees becomes the zero origin: every
// timecode is (pts - first_pts) * framerate / 90000, so the first teletext
// PES packet always yields 00:00:00:00 regardless of its raw PTS value,
// even when the stream's PCR/PTS base starts well above zero.
func (h *Handler) timecodeForPES(pes *PESData) timecode.Timecode {
	var ticks int64
	if pes.Header != nil && pes.Header.OptionalHeader != nil && pes.Header.OptionalHeader.PTS != nil {
		ticks = pes.Header.OptionalHeader.PTS.Base
	}
	if !h.havePTSOrigin {
		h.ptsOrigin = ticks
		h.havePTSOrigin = true
	}
	seconds := float64(ticks-h.ptsOrigin) / 90000.0
	frames := int(seconds * rateFrameRate(h.Timebase))
	tc, err := timecode.FromFrames(frames, h.Timebase, h.DropFrame)
	if err != nil {
		tc, _ = timecode.FromFrames(0, h.Timebase, h.DropFrame)
	}
	return tc
}

func rateFrameRate(tb timecode.Timebase) float64 {
	switch tb {
	case timecode.Rate24:
		return 24
	case timecode.Rate25:
		return 25
	case timecode.Rate30:
		return 30.0 / 1.001
	case timecode.Rate48:
		return 48
	case timecode.Rate50:
		return 50
	case timecode.Rate60:
		return 60.0 / 1.001
	default:
		return 25
	}
}
