// Package mxf reads SMPTE 377 MXF KLV streams, dispatching on the
// classified key type to filter, extract, or restripe ancillary/teletext
// essence and its System-item timecodes.
package mxf

import (
	"github.com/nathanpbutler/opx/klv"
	"github.com/nathanpbutler/opx/timecode"
)

// Mode selects the handler's behaviour over the common KLV loop.
type Mode int

const (
	// ModeFilter reads System and Data items, validating System timecode
	// sequencing and yielding decoded ANC lines.
	ModeFilter Mode = iota
	// ModeExtract writes selected essence (by demux or by requested
	// KeyType) to per-key sinks.
	ModeExtract
	// ModeRestripe rewrites System timecode bytes and TimecodeComponent
	// tags in place.
	ModeRestripe
)

func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "Filter"
	case ModeExtract:
		return "Extract"
	case ModeRestripe:
		return "Restripe"
	default:
		return "Unknown"
	}
}

// Config holds the options shared by all three modes. In the zero value
// sequential-timecode checking is off and WantTimebase is 0, which no
// System-item rate code decodes to, so the System-item timebase check
// (verifyTimebase) fails with ErrTimebaseMismatch for every System item.
type Config struct {
	// SequentialCheck enables the Filter-mode check that each System
	// timecode is the successor of the last.
	SequentialCheck bool

	// WantTimebase/WantDropFrame are the stream's declared
	// TimecodeComponent values, checked against every System pack's
	// rate-table-decoded timebase/drop-frame.
	WantTimebase  timecode.Timebase
	WantDropFrame bool

	// ExtractDemux selects demux-by-key-prefix mode when true; otherwise
	// Extract uses ExtractKinds to select specific KeyTypes.
	ExtractDemux bool
	ExtractKinds map[klv.KeyType]bool

	// PrependHeader, when true, writes the raw KLV header (key + BER
	// length) before each extracted value.
	PrependHeader bool

	// RestripeStartFrame/RestripeTimebase/RestripeDropFrame are the new
	// TimecodeComponent tag values Restripe writes into tags 0x1501/
	// 0x1502/0x1503.
	RestripeStartFrame uint64
	RestripeTimebase   uint16
	RestripeDropFrame  bool

	// NewTimecode computes the replacement System timecode for Restripe,
	// given the one just read. A nil func leaves System timecodes
	// untouched.
	NewTimecode func(old timecode.Timecode) timecode.Timecode
}
