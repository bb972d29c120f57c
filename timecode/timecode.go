// Package timecode implements SMPTE HH:MM:SS:FF timecode arithmetic: BCD
// packing, drop-frame counting, frame-rate-aware increment/decrement, and
// frame-number round-tripping, for the timebases used by broadcast ancillary
// data (24, 25, 30, 48, 50, 60 fps).
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathanpbutler/opx/opxerr"
)

// Timebase is a legal nominal frame rate for a Timecode.
type Timebase int

const (
	Rate24 Timebase = 24
	Rate25 Timebase = 25
	Rate30 Timebase = 30
	Rate48 Timebase = 48
	Rate50 Timebase = 50
	Rate60 Timebase = 60
)

// rateTable is the 16-entry rate-code table used by MXF System metadata
// packs: index is the rate code's bits 4..1.
var rateTable = [16]int{0, 24, 25, 30, 48, 50, 60, 72, 75, 90, 96, 100, 120, 0, 0, 0}

// RateFromCode decodes an MXF System-pack rate code byte into a Timebase and
// drop-frame flag. Bit 0 indicates the 1.001 divider (drop-frame); bits 4..1
// index rateTable. Returns ok=false if the indexed rate is not a supported
// Timebase.
func RateFromCode(code byte) (tb Timebase, df bool, ok bool) {
	idx := (code >> 1) & 0x0F
	df = code&0x01 != 0
	rate := rateTable[idx]
	switch rate {
	case 24, 25, 30, 48, 50, 60:
		return Timebase(rate), df, true
	default:
		return 0, false, false
	}
}

func (tb Timebase) allowsDropFrame() bool {
	return tb == Rate30 || tb == Rate60
}

// maxFrames returns the 24-hour wraparound frame count for tb/df.
func maxFrames(tb Timebase, df bool) int {
	if df {
		switch tb {
		case Rate30:
			return 2589408
		case Rate60:
			return 2 * 2589408
		}
	}
	return int(tb) * 3600 * 24
}

// Timecode is an SMPTE HH:MM:SS:FF value tied to a timebase and drop-frame
// flag. Timecode is a value type. The zero value reads 00:00:00:00 but has
// timebase 0, which is none of the Rate constants; Add, Next and Previous
// panic on it (integer division by a zero frame count).
type Timecode struct {
	hours, minutes, seconds, frames int
	timebase                        Timebase
	dropFrame                       bool
}

// Timebase returns the Timecode's nominal frame rate.
func (t Timecode) Timebase() Timebase { return t.timebase }

// DropFrame reports whether t uses drop-frame counting.
func (t Timecode) DropFrame() bool { return t.dropFrame }

// Hours, Minutes, Seconds, Frames return the individual components.
func (t Timecode) Hours() int   { return t.hours }
func (t Timecode) Minutes() int { return t.minutes }
func (t Timecode) Seconds() int { return t.seconds }
func (t Timecode) Frames() int  { return t.frames }

// Field returns the derived field number: frames%2 for timebases 48/50/60,
// else 0.
func (t Timecode) Field() int {
	switch t.timebase {
	case Rate48, Rate50, Rate60:
		return t.frames % 2
	default:
		return 0
	}
}

// FromHMSF constructs a Timecode from its components, validating ranges and
// drop-frame legality.
func FromHMSF(h, m, s, f int, tb Timebase, df bool) (Timecode, error) {
	if df && !tb.allowsDropFrame() {
		return Timecode{}, fmt.Errorf("timecode: %w: %d", opxerr.ErrInvalidDropFrame, tb)
	}
	if h < 0 || h >= 24 || m < 0 || m >= 60 || s < 0 || s >= 60 || f < 0 || f >= int(tb) {
		return Timecode{}, fmt.Errorf("timecode: %w: %02d:%02d:%02d:%02d @ %d", opxerr.ErrOutOfRange, h, m, s, f, tb)
	}
	if df && s == 0 && m%10 != 0 {
		dropped := 2
		if tb == Rate60 {
			dropped = 4
		}
		if f < dropped {
			return Timecode{}, fmt.Errorf("timecode: %w: %02d:%02d:%02d;%02d does not exist under drop-frame", opxerr.ErrOutOfRange, h, m, s, f)
		}
	}
	return Timecode{hours: h, minutes: m, seconds: s, frames: f, timebase: tb, dropFrame: df}, nil
}

// FromString parses "HH:MM:SS:FF" (non-drop) or "HH:MM:SS;FF" (forces
// drop-frame) at the given timebase. The df parameter is the caller's
// default; a semicolon separator always forces df=true regardless of it.
func FromString(s string, tb Timebase, df bool) (Timecode, error) {
	sep := ":"
	if idx := strings.LastIndexAny(s, ";"); idx >= 0 {
		sep = ";"
		df = true
	}
	firstThree := s
	lastField := ""
	if i := strings.LastIndex(s, sep); i >= 0 {
		firstThree = s[:i]
		lastField = s[i+1:]
	}
	parts := strings.Split(firstThree, ":")
	if len(parts) != 3 || lastField == "" {
		return Timecode{}, fmt.Errorf("timecode: %w: malformed string %q", opxerr.ErrOutOfRange, s)
	}
	vals := make([]int, 4)
	for i, p := range append(parts, lastField) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Timecode{}, fmt.Errorf("timecode: %w: malformed string %q", opxerr.ErrOutOfRange, s)
		}
		vals[i] = n
	}
	return FromHMSF(vals[0], vals[1], vals[2], vals[3], tb, df)
}

// FromFrames constructs a Timecode from an absolute frame number, reduced
// modulo max_frames; negative n wraps upward.
func FromFrames(n int, tb Timebase, df bool) (Timecode, error) {
	if df && !tb.allowsDropFrame() {
		return Timecode{}, fmt.Errorf("timecode: %w: %d", opxerr.ErrInvalidDropFrame, tb)
	}
	max := maxFrames(tb, df)
	n %= max
	if n < 0 {
		n += max
	}
	h, m, s, f := framesToHMSF(n, tb, df)
	return Timecode{hours: h, minutes: m, seconds: s, frames: f, timebase: tb, dropFrame: df}, nil
}

// FrameNumber returns t's absolute frame number in 0..max_frames.
func (t Timecode) FrameNumber() int {
	return hmsfToFrames(t.hours, t.minutes, t.seconds, t.frames, t.timebase, t.dropFrame)
}

// droppedFrames returns how many frames are dropped in the first
// totalMinutes elapsed minutes at 30fps, generalised ×4 for 60fps.
func droppedFrames(totalMinutes int, tb Timebase) int {
	perDrop := 2
	if tb == Rate60 {
		perDrop = 4 // 4 frames dropped per minute at 60fps
	}
	tens := totalMinutes / 10
	rem := totalMinutes % 10
	if rem == 0 {
		return tens * 9 * perDrop
	}
	return tens*9*perDrop + rem*perDrop
}

func hmsfToFrames(h, m, s, f int, tb Timebase, df bool) int {
	totalMinutes := h*60 + m
	framesPerSecond := int(tb)
	nominal := (h*3600+m*60+s)*framesPerSecond + f
	if !df {
		return nominal
	}
	return nominal - droppedFrames(totalMinutes, tb)
}

func framesToHMSF(n int, tb Timebase, df bool) (h, m, s, f int) {
	fps := int(tb)
	if !df {
		f = n % fps
		total := n / fps
		s = total % 60
		total /= 60
		m = total % 60
		h = total / 60
		return
	}

	// Drop-frame: every minute drops 2 (30fps) or 4 (60fps) frame numbers
	// except every tenth minute. Walk minute-by-minute, subtracting each
	// minute's frame budget, to invert the forward drop-counting rule.
	dropPerMinute := 2
	if tb == Rate60 {
		dropPerMinute = 4
	}
	framesPerMinuteNormal := fps*60 - dropPerMinute
	framesPerTenMinutes := framesPerMinuteNormal*9 + fps*60

	tenMinBlocks := n / framesPerTenMinutes
	rem := n % framesPerTenMinutes

	totalMinutes := tenMinBlocks * 10
	if rem < fps*60 {
		// first minute of the block: full minute, no drop
	} else {
		rem -= fps * 60
		totalMinutes++
		extraMinutes := rem / framesPerMinuteNormal
		rem -= extraMinutes * framesPerMinuteNormal
		totalMinutes += extraMinutes
		if extraMinutes < 9 {
			rem += dropPerMinute
		}
	}

	f = rem % fps
	secInMinute := rem / fps
	s = secInMinute
	h = totalMinutes / 60
	m = totalMinutes % 60
	return
}

// Add returns t advanced by n frames, wrapping at max_frames.
func (t Timecode) Add(n int) Timecode {
	fn := t.FrameNumber() + n
	out, _ := FromFrames(fn, t.timebase, t.dropFrame)
	return out
}

// AddTimecode returns t + other's frame number, requiring identical
// timebase and drop-frame flag.
func (t Timecode) AddTimecode(other Timecode) (Timecode, error) {
	if t.timebase != other.timebase || t.dropFrame != other.dropFrame {
		return Timecode{}, fmt.Errorf("timecode: %w", opxerr.ErrTimecodeMismatch)
	}
	return t.Add(other.FrameNumber()), nil
}

// Next returns t advanced by one frame, wrapping at max_frames.
func (t Timecode) Next() Timecode { return t.Add(1) }

// Previous returns t stepped back by one frame, wrapping at max_frames.
func (t Timecode) Previous() Timecode { return t.Add(-1) }

// Equal reports whether t and other denote the same frame number, timebase
// and drop-frame flag. Returns an error if timebase/drop-frame differ.
func (t Timecode) Equal(other Timecode) (bool, error) {
	if t.timebase != other.timebase || t.dropFrame != other.dropFrame {
		return false, fmt.Errorf("timecode: %w", opxerr.ErrTimecodeMismatch)
	}
	return t.FrameNumber() == other.FrameNumber(), nil
}

// Less reports whether t denotes an earlier frame than other. Returns an
// error if timebase/drop-frame differ.
func (t Timecode) Less(other Timecode) (bool, error) {
	if t.timebase != other.timebase || t.dropFrame != other.dropFrame {
		return false, fmt.Errorf("timecode: %w", opxerr.ErrTimecodeMismatch)
	}
	return t.FrameNumber() < other.FrameNumber(), nil
}

// String formats t as "HH:MM:SS:FF", or "HH:MM:SS;FF" if drop-frame.
func (t Timecode) String() string {
	sep := ":"
	if t.dropFrame {
		sep = ";"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", t.hours, t.minutes, t.seconds, sep, t.frames)
}

func intToBCD(n int) byte {
	return byte((n/10)<<4 | (n % 10))
}

func bcdToInt(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

// FromBytes decodes a 4-byte SMPTE packed-BCD timecode. The
// high bit of byte[3] (hours) encodes field=1 for 50/60fps; the high bit of
// byte[1] (seconds) encodes field=1 for 48fps; for 30/60fps the frame byte
// carries a baked-in +64 offset that must be subtracted before BCD decode.
// For 48/50/60fps the decoded frame value is doubled and the field bit
// added back, since BCD stores a 25/30fps-equivalent value plus a field
// flag.
func FromBytes(b [4]byte, tb Timebase, df bool) (Timecode, error) {
	if df && !tb.allowsDropFrame() {
		return Timecode{}, fmt.Errorf("timecode: %w: %d", opxerr.ErrInvalidDropFrame, tb)
	}

	frameByte := b[0]
	secByte := b[1]
	minByte := b[2]
	hourByte := b[3]

	field := 0
	switch tb {
	case Rate50, Rate60:
		field = int(hourByte>>7) & 1
		hourByte &^= 0x80
	case Rate48:
		field = int(secByte>>7) & 1
		secByte &^= 0x80
	}

	if tb == Rate30 || tb == Rate60 {
		raw := frameByte
		if raw >= 64 {
			raw -= 64
		}
		frameByte = raw
	}

	f := bcdToInt(frameByte)
	s := bcdToInt(secByte)
	m := bcdToInt(minByte)
	h := bcdToInt(hourByte)

	switch tb {
	case Rate48, Rate50, Rate60:
		f = f*2 + field
	}

	return FromHMSF(h, m, s, f, tb, df)
}

// ToBytes is the inverse of FromBytes. BCD is computed before the field
// high-bit is OR'd in and before the +64 offset for 30/60fps is applied.
func (t Timecode) ToBytes() [4]byte {
	f := t.frames
	field := t.Field()
	switch t.timebase {
	case Rate48, Rate50, Rate60:
		f = f / 2
	}

	frameByte := intToBCD(f)
	secByte := intToBCD(t.seconds)
	minByte := intToBCD(t.minutes)
	hourByte := intToBCD(t.hours)

	if t.timebase == Rate30 || t.timebase == Rate60 {
		frameByte += 64
	}

	switch t.timebase {
	case Rate50, Rate60:
		hourByte |= byte(field) << 7
	case Rate48:
		secByte |= byte(field) << 7
	}

	return [4]byte{frameByte, secByte, minByte, hourByte}
}
