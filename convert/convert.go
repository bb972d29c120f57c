// Package convert drives a Handler's decoded Lines into an Emitter, one
// Line at a time, checking for cancellation between each.
package convert

import (
	"context"
	"errors"
	"io"

	"github.com/nathanpbutler/opx/media"
)

// Handler yields decoded Lines until the source is exhausted, at which
// point Next returns io.EOF. Implemented by t42.Handler, vbi.Handler,
// mpegts.Handler, and mxf.Handler in Filter mode.
type Handler interface {
	Next(ctx context.Context) (*media.Line, error)
}

// Emitter accepts decoded Lines and writes them to an output stream.
// Implemented by rcwt.Emitter and stl.Emitter.
type Emitter interface {
	Emit(line *media.Line) error
}

// Closer is implemented by Emitters that must finalize their output after
// the last Line (stl.Emitter, whose GSI header needs final subtitle
// counts). Run calls Close after the source is exhausted if the Emitter
// implements it.
type Closer interface {
	Close() error
}

// Run reads every Line from h and writes it to e, in order, until h is
// exhausted or ctx is cancelled. If e implements Closer, Close is called
// once after the last successful Emit.
func Run(ctx context.Context, h Handler, e Emitter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := h.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		if err := e.Emit(line); err != nil {
			return err
		}
	}

	if c, ok := e.(Closer); ok {
		return c.Close()
	}
	return nil
}
