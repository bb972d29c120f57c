// Package rcwt writes Raw Captions With Time, a minimal caption-transport
// file format: an 11-byte fixed header followed by one fixed-size packet
// per T42 line with meaningful text; other lines are skipped.
package rcwt

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/t42"
)

// header is the fixed 11-byte RCWT file header.
var header = [11]byte{0xCC, 0xCC, 0xED, 0xCC, 0x00, 0x50, 0x00, 0x02, 0x00, 0x00, 0x00}

const (
	packetType  = 0x03
	framingByte = 0x27
	field0Mark  = 0xAF
	field1Mark  = 0xAB
	packetLen   = 1 + 8 + 1 + 1 + 42
)

// Emitter writes RCWT packets to an output stream. State (header-written
// flag, FTS, field) is per-instance: a fresh Emitter always starts clean.
type Emitter struct {
	w             io.Writer
	headerWritten bool
	fts           uint64 // milliseconds
	field         int

	// StepMS is the FTS increment per line, in milliseconds. Defaults to
	// 40 (25fps).
	StepMS uint64
}

// NewEmitter creates an Emitter writing to w with the default 40ms/line
// (25fps) FTS step.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w, StepMS: 40}
}

// Emit writes one T42 line as an RCWT packet, writing the file header
// first if this is the Emitter's first call. line.Payload must be exactly
// 42 bytes. Lines whose 40-byte text body carries no meaningful content
// (see t42.HasMeaningfulContent) are skipped: no packet is written and the
// Emitter's FTS/field state does not advance.
func (e *Emitter) Emit(line *media.Line) error {
	if len(line.Payload) != 42 {
		return fmt.Errorf("rcwt: %w: payload length %d, want 42", opxerr.ErrUnsupportedConversion, len(line.Payload))
	}
	var body [40]byte
	copy(body[:], line.Payload[2:])
	if !t42.HasMeaningfulContent(body) {
		return nil
	}
	if !e.headerWritten {
		if _, err := e.w.Write(header[:]); err != nil {
			return err
		}
		e.headerWritten = true
	}

	var packet [packetLen]byte
	packet[0] = packetType
	binary.LittleEndian.PutUint64(packet[1:9], e.fts)
	packet[9] = framingByte
	if e.field == 0 {
		packet[10] = field0Mark
	} else {
		packet[10] = field1Mark
	}
	copy(packet[11:], line.Payload)

	if _, err := e.w.Write(packet[:]); err != nil {
		return err
	}

	e.fts += e.StepMS
	e.field ^= 1
	return nil
}
