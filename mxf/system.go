package mxf

import (
	"fmt"

	"github.com/nathanpbutler/opx/opxerr"
	"github.com/nathanpbutler/opx/timecode"
)

// A System metadata item's 4-byte BCD timecode sits at one of two fixed
// offsets depending on whether the item is pack- or set-encoded; 2 bytes
// further back is the rate-code byte, with 1 reserved byte between the two
// (rate code at tcOffset-2, reserved byte at tcOffset-1, timecode at
// tcOffset..tcOffset+3). Which offset applies is picked by whichever fits
// the value's length.
const (
	systemPackTCOffset = 41
	systemSetTCOffset  = 12
)

// SystemTimecode is the decoded content of a System metadata pack or set:
// the rate-table timebase/drop-frame, the BCD timecode, and the byte
// offset of the 4 timecode bytes within the KLV value (Restripe needs this
// to compute the absolute file offset to seek to).
type SystemTimecode struct {
	Timebase  timecode.Timebase
	DropFrame bool
	Timecode  timecode.Timecode
	TCOffset  int
}

// parseSystemPack decodes a System metadata item's rate code and BCD
// timecode, picking the pack offset (41) if the value is long enough to
// place a rate code there, else the set offset (12).
func parseSystemPack(value []byte) (SystemTimecode, error) {
	var tcOffset int
	switch {
	case len(value) >= systemPackTCOffset+4:
		tcOffset = systemPackTCOffset
	case len(value) >= systemSetTCOffset+4:
		tcOffset = systemSetTCOffset
	default:
		return SystemTimecode{}, fmt.Errorf("mxf: %w: system item too short (%d bytes)", opxerr.ErrTimebaseMismatch, len(value))
	}

	rateOffset := tcOffset - 2
	tb, df, ok := timecode.RateFromCode(value[rateOffset])
	if !ok {
		return SystemTimecode{}, fmt.Errorf("mxf: %w: unrecognised rate code 0x%02x", opxerr.ErrTimebaseMismatch, value[rateOffset])
	}

	var tcBytes [4]byte
	copy(tcBytes[:], value[tcOffset:tcOffset+4])
	tc, err := timecode.FromBytes(tcBytes, tb, df)
	if err != nil {
		return SystemTimecode{}, fmt.Errorf("mxf: %w", err)
	}

	return SystemTimecode{Timebase: tb, DropFrame: df, Timecode: tc, TCOffset: tcOffset}, nil
}

// verifyTimebase checks a parsed System timecode's rate-table timebase and
// drop-frame flag against the stream's declared TimecodeComponent values.
func verifyTimebase(st SystemTimecode, wantTB timecode.Timebase, wantDF bool) error {
	if st.Timebase != wantTB || st.DropFrame != wantDF {
		return fmt.Errorf("mxf: %w: system item is %v/drop=%v, TimecodeComponent declares %v/drop=%v",
			opxerr.ErrTimebaseMismatch, st.Timebase, st.DropFrame, wantTB, wantDF)
	}
	return nil
}
