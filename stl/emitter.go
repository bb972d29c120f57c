package stl

import (
	"io"

	"github.com/nathanpbutler/opx/media"
	"github.com/nathanpbutler/opx/timecode"
)

// openSubtitle tracks the subtitle currently being accumulated, extended
// while consecutive lines carry the same text.
type openSubtitle struct {
	text  string
	start timecode.Timecode
	end   timecode.Timecode
}

// Emitter assembles teletext/VBI lines into STL subtitles and writes a
// complete file on Close. The GSI header carries final subtitle/TTI counts,
// so nothing reaches w until Close: Emit only accumulates blocks.
type Emitter struct {
	w      io.Writer
	tb     timecode.Timebase
	df     bool
	fields HeaderFields

	open   *openSubtitle
	blocks []tti
}

// NewEmitter creates an Emitter targeting timebase tb/df for Disk Format
// Code selection.
func NewEmitter(w io.Writer, tb timecode.Timebase, df bool) *Emitter {
	return &Emitter{w: w, tb: tb, df: df}
}

// SetHeaderFields overrides the GSI Country/Language/Originator fields.
func (e *Emitter) SetHeaderFields(f HeaderFields) {
	e.fields = f
}

// Emit merges line into the currently open subtitle, or closes it and opens
// a new one. Consecutive lines with identical text extend the open
// subtitle's end timecode to this line's timecode plus one frame. A blank
// line (empty Text) closes whatever subtitle is open without starting a
// new one.
func (e *Emitter) Emit(line *media.Line) error {
	if line.Text == "" {
		e.closeOpen()
		return nil
	}

	if e.open != nil && e.open.text == line.Text {
		e.open.end = line.Timecode.Next()
		return nil
	}

	e.closeOpen()
	e.open = &openSubtitle{
		text:  line.Text,
		start: *line.Timecode,
		end:   line.Timecode.Next(),
	}
	return nil
}

func (e *Emitter) closeOpen() {
	if e.open == nil {
		return
	}
	e.blocks = append(e.blocks, tti{
		start:   e.open.start,
		end:     e.open.end,
		text:    e.open.text,
		vertPos: defaultVertPos,
	})
	e.open = nil
}

// Close flushes any open subtitle and writes the complete file: the GSI
// header followed by one TTI block per subtitle, in order.
func (e *Emitter) Close() error {
	e.closeOpen()

	gsi := buildGSI(e.tb, e.df, e.fields, len(e.blocks), len(e.blocks))
	if err := writeGSI(e.w, gsi); err != nil {
		return err
	}

	for i := range e.blocks {
		e.blocks[i].number = uint16(i)
		block := e.blocks[i].encode()
		if _, err := e.w.Write(block[:]); err != nil {
			return err
		}
	}
	return nil
}
