// Package opxerr defines the sentinel errors shared across opx's codecs and
// handlers. Callers compare against these with errors.Is; packages wrap them
// with fmt.Errorf("%w: ...") to attach context.
package opxerr

import "errors"

var (
	// ErrNotMXF is returned when the first KLV read does not begin with the
	// SMPTE UL prefix 06 0E 2B 34.
	ErrNotMXF = errors.New("opx: not an MXF stream")

	// ErrBadBERLength is returned when a BER length's long-form byte count
	// exceeds 8, or the stream is truncated before the declared length bytes.
	ErrBadBERLength = errors.New("opx: malformed BER length")

	// ErrBadLineHeader is returned when an ANC line header's last byte is
	// not 0x01. Fatal for the containing packet.
	ErrBadLineHeader = errors.New("opx: malformed ANC line header")

	// ErrInvalidLineLength is returned when an ANC line length is not in
	// (0, 10000]. Fatal for the containing packet.
	ErrInvalidLineLength = errors.New("opx: invalid ANC line length")

	// ErrNoSignal is returned when a VBI row has zero dynamic range
	// (max == min sample value).
	ErrNoSignal = errors.New("opx: no signal in VBI row")

	// ErrNoCRIFC is returned when a bit-sliced VBI row contains no clock
	// run-in + framing code within the first 100 sample offsets.
	ErrNoCRIFC = errors.New("opx: clock run-in/framing code not found")

	// ErrNonSequentialTimecode is returned when System timecode sequence
	// checking is enabled and a timecode is not the successor of the last.
	ErrNonSequentialTimecode = errors.New("opx: non-sequential system timecode")

	// ErrTimebaseMismatch is returned when a System pack's rate-table
	// decoded timebase/drop-frame does not match the stream's
	// TimecodeComponent values.
	ErrTimebaseMismatch = errors.New("opx: timebase mismatch")

	// ErrOutOfRange is returned by Timecode constructors when a component
	// (hours/minutes/seconds/frames) is outside its legal range.
	ErrOutOfRange = errors.New("opx: timecode component out of range")

	// ErrInvalidDropFrame is returned when drop-frame is requested for a
	// timebase other than 30 or 60.
	ErrInvalidDropFrame = errors.New("opx: drop-frame not valid for timebase")

	// ErrTimecodeMismatch is returned when arithmetic or comparison is
	// attempted between Timecodes of differing timebase or drop-frame flag.
	ErrTimecodeMismatch = errors.New("opx: timecode timebase/drop-frame mismatch")

	// ErrUnsupportedConversion is returned when a conversion is requested
	// between two formats with no defined path.
	ErrUnsupportedConversion = errors.New("opx: unsupported conversion")

	// ErrCancelled is returned when a caller cancellation signal is
	// observed between yields.
	ErrCancelled = errors.New("opx: operation cancelled")
)
