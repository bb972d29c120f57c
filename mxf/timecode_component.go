package mxf

import "encoding/binary"

// TimecodeComponent local-set tags Restripe rewrites.
const (
	tagStartTimecode       = 0x1501 // 8-byte big-endian start frame count
	tagRoundedTimecodeBase = 0x1502 // 2-byte big-endian nominal rate
	tagDropFrame           = 0x1503 // 1-byte boolean
)

// rewriteTimecodeComponent walks a TimecodeComponent's local-set value
// (repeating 2-byte tag, 2-byte length, value triples) and overwrites the
// start-frame, timebase and drop-frame items in place where present and
// correctly sized. It returns the number of items rewritten; callers write
// the whole (unchanged-length) value buffer back over itself.
func rewriteTimecodeComponent(value []byte, startFrame uint64, timebase uint16, dropFrame bool) int {
	n := 0
	off := 0
	for off+4 <= len(value) {
		tag := binary.BigEndian.Uint16(value[off:])
		length := int(binary.BigEndian.Uint16(value[off+2:]))
		start := off + 4
		end := start + length
		if end > len(value) {
			break
		}
		switch tag {
		case tagStartTimecode:
			if length == 8 {
				binary.BigEndian.PutUint64(value[start:end], startFrame)
				n++
			}
		case tagRoundedTimecodeBase:
			if length == 2 {
				binary.BigEndian.PutUint16(value[start:end], timebase)
				n++
			}
		case tagDropFrame:
			if length == 1 {
				if dropFrame {
					value[start] = 1
				} else {
					value[start] = 0
				}
				n++
			}
		}
		off = end
	}
	return n
}
