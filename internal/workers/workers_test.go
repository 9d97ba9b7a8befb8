// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_Size(t *testing.T) {
	assert.Equal(t, 3, NewPool(3).Size())
	assert.GreaterOrEqual(t, NewPool(0).Size(), 1)
}

func TestPool_RunCollectsErrorsInOrder(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job{
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
		func(context.Context) error { return nil },
	}

	errs := NewPool(2).Run(context.Background(), jobs)
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
}

// TestPool_RespectsLimit verifies that no more than Size jobs run at once.
func TestPool_RespectsLimit(t *testing.T) {
	const size = 2
	var running, peak atomic.Int32

	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = func(context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		}
	}

	errs := NewPool(size).Run(context.Background(), jobs)
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_CanceledContextSkipsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	jobs := []Job{
		func(context.Context) error { ran.Add(1); return nil },
		func(context.Context) error { ran.Add(1); return nil },
	}

	errs := NewPool(1).Run(ctx, jobs)
	assert.Zero(t, ran.Load())
	for _, err := range errs {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestPool_EmptyJobs(t *testing.T) {
	assert.Empty(t, NewPool(4).Run(context.Background(), nil))
}
