package media

import "sync"

// Buffer sizes pooled by opx's handlers and codecs: ANC line headers
// (2, 14 bytes), T42 lines (42), TS packets (188, 192), and VBI rows
// (720, 1440).
const (
	SizeANCHeader    = 2
	SizeANCLineHdr   = 14
	SizeT42          = 42
	SizeTSPacket188  = 188
	SizeTSPacket192  = 192
	SizeVBI          = 720
	SizeVBIDouble    = 1440
)

var pools = map[int]*sync.Pool{
	SizeANCHeader:   {New: func() any { return make([]byte, SizeANCHeader) }},
	SizeANCLineHdr:  {New: func() any { return make([]byte, SizeANCLineHdr) }},
	SizeT42:         {New: func() any { return make([]byte, SizeT42) }},
	SizeTSPacket188: {New: func() any { return make([]byte, SizeTSPacket188) }},
	SizeTSPacket192: {New: func() any { return make([]byte, SizeTSPacket192) }},
	SizeVBI:         {New: func() any { return make([]byte, SizeVBI) }},
	SizeVBIDouble:   {New: func() any { return make([]byte, SizeVBIDouble) }},
}

// GetBuffer returns a zeroed buffer of exactly size bytes, drawn from a pool
// when size matches one of opx's known fixed sizes, or freshly allocated
// otherwise. Callers that want pooling for other sizes should round up to
// the nearest known size and slice.
func GetBuffer(size int) []byte {
	p, ok := pools[size]
	if !ok {
		return make([]byte, size)
	}
	buf := p.Get().([]byte)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// PutBuffer returns buf to its pool if its length matches a known fixed
// size. It is a no-op for other sizes, so callers may always call it.
func PutBuffer(buf []byte) {
	p, ok := pools[len(buf)]
	if !ok {
		return
	}
	p.Put(buf) //nolint:staticcheck // buf is a []byte of the pool's fixed size
}

// Release returns a Line's payload buffer to the pool. Safe to call on a
// Line whose payload was not pool-allocated; PutBuffer degrades to a no-op.
func (l *Line) Release() {
	if l.pooled {
		PutBuffer(l.Payload)
		l.Payload = nil
		l.pooled = false
	}
}
