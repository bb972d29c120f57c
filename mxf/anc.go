package mxf

import (
	"encoding/binary"
	"fmt"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/t42"
	"github.com/nathanpbutler/opx/timecode"
)

const ancLineHeaderLen = 14

// ANCLine is one decoded line from an MXF Data essence value's inner ANC
// container.
type ANCLine struct {
	Number       int
	Wrapping     byte
	SampleCoding byte
	SampleCount  int
	Payload      []byte
}

// ParseANCPacket decodes the container an MXF Data essence value carries
// for ancillary data: a 2-byte big-endian line count, then that many
// [14-byte header, payload] pairs. Header fields sit at fixed offsets:
// number (0..1), wrapping (2), sample_coding (3), sample_count (4..5),
// length (8..9); the header's last byte must equal 0x01.
//
// Both ErrBadLineHeader (bad terminator byte) and ErrInvalidLineLength
// (length not in (0, 10000]) are fatal to the whole packet: parsing stops
// and ParseANCPacket returns the lines decoded so far alongside the error.
func ParseANCPacket(data []byte) ([]ANCLine, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("mxf: %w: ANC packet too short for line count", opxerr.ErrBadLineHeader)
	}
	count := int(binary.BigEndian.Uint16(data[0:2]))
	lines := make([]ANCLine, 0, count)
	off := 2
	for i := 0; i < count; i++ {
		if off+ancLineHeaderLen > len(data) {
			return lines, fmt.Errorf("mxf: %w: truncated header for line %d", opxerr.ErrBadLineHeader, i)
		}
		header := data[off : off+ancLineHeaderLen]
		if header[13] != 0x01 {
			return lines, fmt.Errorf("mxf: %w: line %d terminator byte 0x%02x", opxerr.ErrBadLineHeader, i, header[13])
		}
		length := int(binary.BigEndian.Uint16(header[8:10]))
		if length <= 0 || length > 10000 {
			return lines, fmt.Errorf("mxf: %w: line %d length %d", opxerr.ErrInvalidLineLength, i, length)
		}

		payloadStart := off + ancLineHeaderLen
		payloadEnd := payloadStart + length
		if payloadEnd > len(data) {
			return lines, fmt.Errorf("mxf: %w: line %d payload truncated", opxerr.ErrInvalidLineLength, i)
		}
		lines = append(lines, ANCLine{
			Number:       int(binary.BigEndian.Uint16(header[0:2])),
			Wrapping:     header[2],
			SampleCoding: header[3],
			SampleCount:  int(binary.BigEndian.Uint16(header[4:6])),
			Payload:      append([]byte(nil), data[payloadStart:payloadEnd]...),
		})
		off = payloadEnd
	}
	return lines, nil
}

// toMediaLine packages a decoded ANC line as a media.Line, parsing it as
// T42 (for magazine/row/text) when its payload is 42 bytes, else tagging
// it as raw VBI/VBI_DOUBLE by length.
func (a ANCLine) toMediaLine(seq int64, tc *timecode.Timecode) *media.Line {
	if len(a.Payload) == t42.LineLen {
		var buf [t42.LineLen]byte
		copy(buf[:], a.Payload)
		parsed := t42.ParseLine(buf)
		return &media.Line{
			Seq:      seq,
			Timecode: tc,
			Magazine: parsed.Magazine,
			Row:      parsed.Row,
			Kind:     media.KindT42,
			Payload:  a.Payload,
			Samples:  a.SampleCount,
			Text:     parsed.Text,
		}
	}
	kind := media.KindVBI
	if len(a.Payload) == media.KindVBIDouble.PayloadLen() {
		kind = media.KindVBIDouble
	}
	return &media.Line{
		Seq:      seq,
		Timecode: tc,
		Magazine: -1,
		Row:      -1,
		Kind:     kind,
		Payload:  a.Payload,
		Samples:  a.SampleCount,
	}
}
