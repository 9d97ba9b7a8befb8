// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs jobs with at most Size of them in flight.
type Pool struct {
	size int
}

// NewPool returns a pool of the given size. A size below one means
// GOMAXPROCS.
func NewPool(size int) *Pool {
	if size < 1 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{size: size}
}

// Size is the concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Run executes every job and waits for all of them. The returned slice is
// parallel to jobs and holds each job's error. A failing job does not cancel
// the others; jobs not yet started when ctx is done are skipped with
// ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))

	var g errgroup.Group
	g.SetLimit(p.size)

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = job(ctx)
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
