// Package batch runs multiple independent conversions concurrently.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent unit of work: typically a convert.Run call closed
// over its own Handler/Emitter pair, or an mxf.Handler Restripe/Extract
// Run call. Jobs share nothing and must not touch each other's state.
type Job func(ctx context.Context) error

// Convert runs every job concurrently, each in its own goroutine, and
// returns one error per job in the same order jobs were given (nil for
// jobs that succeeded). Unlike errgroup.Group.Wait, a failing job does not
// cancel its siblings: every job gets to finish, and every error is
// reported, since a batch of independent file conversions has no shared
// resource for one failure to protect.
func Convert(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			errs[i] = job(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
