package mxf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nathanpbutler/opx/klv"
	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/timecode"
)

// Handler drives the common KLV loop over an MXF essence stream: read one
// record, classify its key, dispatch by (Mode, KeyType).
type Handler struct {
	mode Mode
	cfg  Config

	r       io.Reader          // Filter, Extract
	rw      io.ReadWriteSeeker // Restripe
	sinkFor SinkOpener         // Extract

	seq      int64
	lastTC   *timecode.Timecode
	haveLast bool
	pending  []*media.Line
	sinks    map[string]io.Writer

	pkt *media.Packet // NextPacket's in-progress frame, nil between frames
}

// SinkOpener returns the writer Extract should use for a given sink key,
// opening it lazily on first use. Implementations typically create a file
// named key.Name+key.Ext.
type SinkOpener func(key SinkKey) (io.Writer, error)

// SinkKey identifies one Extract-mode output sink.
type SinkKey struct {
	Name string
	Kind klv.KeyType
	Ext  string
}

// NewFilterHandler creates a Handler that reads System and Data items,
// validating System timecodes and yielding decoded ANC lines via Next.
func NewFilterHandler(r io.Reader, cfg Config) *Handler {
	return &Handler{mode: ModeFilter, cfg: cfg, r: r}
}

// NewExtractHandler creates a Handler that writes selected essence to
// per-key sinks opened through sinkFor. Run drives it to completion.
func NewExtractHandler(r io.Reader, cfg Config, sinkFor SinkOpener) *Handler {
	return &Handler{mode: ModeExtract, cfg: cfg, r: r, sinkFor: sinkFor, sinks: make(map[string]io.Writer)}
}

// NewRestripeHandler creates a Handler that rewrites System timecode bytes
// and TimecodeComponent tags in place. rw must support Seek. Run drives it
// to completion.
func NewRestripeHandler(rw io.ReadWriteSeeker, cfg Config) *Handler {
	return &Handler{mode: ModeRestripe, cfg: cfg, rw: rw}
}

// Next returns the next decoded ANC line in Filter mode, or io.EOF at end
// of stream. Only valid for handlers created with NewFilterHandler.
func (h *Handler) Next(ctx context.Context) (*media.Line, error) {
	if h.mode != ModeFilter {
		return nil, fmt.Errorf("mxf: Next called on a %v handler", h.mode)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mxf: %w", opxerr.ErrCancelled)
		}
		if len(h.pending) > 0 {
			l := h.pending[0]
			h.pending = h.pending[1:]
			return l, nil
		}

		rec, err := klv.ReadRecord(h.r)
		if err != nil {
			return nil, err
		}

		switch rec.Kind {
		case klv.KeySystem:
			if err := h.handleSystem(rec); err != nil {
				return nil, err
			}
		case klv.KeyData:
			lines, err := ParseANCPacket(rec.Value)
			if err != nil {
				return nil, err
			}
			for _, l := range lines {
				h.pending = append(h.pending, l.toMediaLine(h.seq, h.lastTC))
				h.seq++
			}
		default:
			// TimecodeComponent, Video/Audio/Other, structural keys: skip.
		}
	}
}

// NextPacket returns the next Packet of decoded ANC lines sharing one
// frame timecode, or io.EOF at end of stream. A System item marks a frame
// boundary: every Data-derived line read before the next System item
// belongs to the frame the prior System item established. Only valid for
// handlers created with NewFilterHandler; do not mix calls to Next and
// NextPacket on the same Handler.
func (h *Handler) NextPacket(ctx context.Context) (*media.Packet, error) {
	if h.mode != ModeFilter {
		return nil, fmt.Errorf("mxf: NextPacket called on a %v handler", h.mode)
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mxf: %w", opxerr.ErrCancelled)
		}

		rec, err := klv.ReadRecord(h.r)
		if err != nil {
			if errors.Is(err, io.EOF) && h.pkt != nil && len(h.pkt.Lines) > 0 {
				out := h.pkt
				h.pkt = nil
				return out, nil
			}
			return nil, err
		}

		switch rec.Kind {
		case klv.KeySystem:
			if h.pkt != nil && len(h.pkt.Lines) > 0 {
				out := h.pkt
				if err := h.handleSystem(rec); err != nil {
					return nil, err
				}
				h.pkt = &media.Packet{Timecode: *h.lastTC}
				return out, nil
			}
			if err := h.handleSystem(rec); err != nil {
				return nil, err
			}
			h.pkt = &media.Packet{Timecode: *h.lastTC}
		case klv.KeyData:
			lines, err := ParseANCPacket(rec.Value)
			if err != nil {
				return nil, err
			}
			if h.pkt == nil {
				h.pkt = &media.Packet{}
			}
			for _, l := range lines {
				h.pkt.Lines = append(h.pkt.Lines, l.toMediaLine(h.seq, h.lastTC))
				h.seq++
			}
		default:
			// TimecodeComponent, Video/Audio/Other, structural keys: skip.
		}
	}
}

// handleSystem parses a System item, validates its timebase and (if
// enabled) its sequencing, and remembers it as the current frame timecode.
func (h *Handler) handleSystem(rec *klv.Record) error {
	st, err := parseSystemPack(rec.Value)
	if err != nil {
		return err
	}
	if err := verifyTimebase(st, h.cfg.WantTimebase, h.cfg.WantDropFrame); err != nil {
		return err
	}
	if h.cfg.SequentialCheck && h.haveLast {
		want := h.lastTC.Next()
		if eq, _ := st.Timecode.Equal(want); !eq {
			return fmt.Errorf("mxf: %w: got %v, want %v", opxerr.ErrNonSequentialTimecode, st.Timecode, want)
		}
	}
	tc := st.Timecode
	h.lastTC = &tc
	h.haveLast = true
	return nil
}

// Run drives an Extract- or Restripe-mode handler to completion, reading
// and dispatching every record until io.EOF.
func (h *Handler) Run(ctx context.Context) error {
	switch h.mode {
	case ModeExtract:
		return h.runExtract(ctx)
	case ModeRestripe:
		return h.runRestripe(ctx)
	default:
		return fmt.Errorf("mxf: Run called on a %v handler", h.mode)
	}
}

func (h *Handler) runExtract(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mxf: %w", opxerr.ErrCancelled)
		}
		rec, err := klv.ReadRecord(h.r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !h.wantsExtract(rec.Kind) {
			continue
		}
		key := sinkKeyFor(rec)
		w, ok := h.sinks[key.Name]
		if !ok {
			w, err = h.sinkFor(key)
			if err != nil {
				return err
			}
			h.sinks[key.Name] = w
		}
		if h.cfg.PrependHeader {
			if _, err := w.Write(rec.Key[:]); err != nil {
				return err
			}
			if _, err := w.Write(klv.EncodeBERLength(rec.Length)); err != nil {
				return err
			}
		}
		if _, err := w.Write(rec.Value); err != nil {
			return err
		}
	}
}

func (h *Handler) wantsExtract(kind klv.KeyType) bool {
	if h.cfg.ExtractDemux {
		switch kind {
		case klv.KeyHeaderPartition, klv.KeyFooterPartition, klv.KeyIndexTableSegment, klv.KeyUnknown:
			return false
		default:
			return true
		}
	}
	return h.cfg.ExtractKinds[kind]
}

func sinkKeyFor(rec *klv.Record) SinkKey {
	name, ok := klv.KeyName(rec.Key[:])
	if !ok {
		name = fmt.Sprintf("%x", rec.Key)
	}
	return SinkKey{Name: name, Kind: rec.Kind, Ext: extFor(name, rec.Kind)}
}

func extFor(name string, kind klv.KeyType) string {
	switch kind {
	case klv.KeyData:
		return ".anc"
	case klv.KeyVideo:
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "h264") || strings.Contains(lower, "avc"):
			return ".264"
		case strings.Contains(lower, "h265") || strings.Contains(lower, "hevc"):
			return ".265"
		}
		return ".bin"
	default:
		return ".bin"
	}
}

// countingReader wraps an io.Reader and counts bytes read through it, so
// Restripe can compute how many header bytes (key + BER length) a record
// consumed without klv.ReadRecord needing to expose that directly.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (h *Handler) runRestripe(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mxf: %w", opxerr.ErrCancelled)
		}

		recordStart, err := h.rw.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		cr := &countingReader{r: h.rw}
		rec, err := klv.ReadRecord(cr)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		headerLen := cr.n - int64(rec.Length)
		valueStart := recordStart + headerLen
		nextRecord := valueStart + int64(rec.Length)

		switch rec.Kind {
		case klv.KeySystem:
			if err := h.restripeSystem(rec, valueStart); err != nil {
				return err
			}
		case klv.KeyTimecodeComponent:
			if err := h.restripeTimecodeComponent(rec, valueStart); err != nil {
				return err
			}
		default:
			// Data/Video/Audio/Other/structural keys: skip.
		}

		if _, err := h.rw.Seek(nextRecord, io.SeekStart); err != nil {
			return err
		}
	}
}

func (h *Handler) restripeSystem(rec *klv.Record, valueStart int64) error {
	if h.cfg.NewTimecode == nil {
		return nil
	}
	st, err := parseSystemPack(rec.Value)
	if err != nil {
		return err
	}
	newTC := h.cfg.NewTimecode(st.Timecode)
	bytes := newTC.ToBytes()

	if _, err := h.rw.Seek(valueStart+int64(st.TCOffset), io.SeekStart); err != nil {
		return err
	}
	if _, err := h.rw.Write(bytes[:]); err != nil {
		return err
	}
	return nil
}

func (h *Handler) restripeTimecodeComponent(rec *klv.Record, valueStart int64) error {
	n := rewriteTimecodeComponent(rec.Value, h.cfg.RestripeStartFrame, h.cfg.RestripeTimebase, h.cfg.RestripeDropFrame)
	if n == 0 {
		return nil
	}
	if _, err := h.rw.Seek(valueStart, io.SeekStart); err != nil {
		return err
	}
	if _, err := h.rw.Write(rec.Value); err != nil {
		return err
	}
	return nil
}
