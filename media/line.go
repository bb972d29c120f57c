// Package media defines the shared data carrier between opx's format
// handlers and codecs: Line (one teletext/VBI raster line) and Packet (the
// lines sharing one frame timecode), plus a buffer pool for the fixed
// sizes those formats use.
package media

import "github.com/nathanpbutler/opx/timecode"

// Kind identifies the sample coding carried by a Line's payload.
type Kind int

const (
	KindT42 Kind = iota
	KindVBI
	KindVBIDouble
)

// PayloadLen returns the fixed payload length required for k: T42 lines
// are 42 bytes, VBI lines 720, VBI_DOUBLE lines 1440.
func (k Kind) PayloadLen() int {
	switch k {
	case KindT42:
		return 42
	case KindVBI:
		return 720
	case KindVBIDouble:
		return 1440
	default:
		return 0
	}
}

// Line is one horizontal raster line of teletext or VBI data. Its payload
// is immutable once fully parsed; a Line is released (returned to the
// buffer pool via Release) when the consuming iterator advances past it.
type Line struct {
	Seq       int64
	Timecode  *timecode.Timecode
	Magazine  int // 1..8, or -1 if not applicable/not yet decoded
	Row       int // 0..31, or -1 if not applicable/not yet decoded
	Kind      Kind
	Payload   []byte
	Samples   int // sample count, for ANC line headers
	Text      string
	pooled    bool
}

// HasPage reports whether Row is the teletext header row (0), which alone
// carries a page number.
func (l *Line) HasPage() bool { return l.Row == 0 }

// Packet groups the Lines sharing one frame timecode. HeaderBytes returns
// the big-endian 2-byte line-count header that would be written for
// this packet at emit time (header[0]<<8|header[1] == len(Lines)).
type Packet struct {
	Timecode timecode.Timecode
	Lines    []*Line
}

// HeaderBytes returns the 2-byte big-endian line-count header for p.
func (p *Packet) HeaderBytes() [2]byte {
	n := len(p.Lines)
	return [2]byte{byte(n >> 8), byte(n)}
}
