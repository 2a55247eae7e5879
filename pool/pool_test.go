// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ErselSeyit/concurrent-data-structures/pool"
)

// TestSubmitWait covers the basic submit/wait round trip.
func TestSubmitWait(t *testing.T) {
	p := pool.New(4)
	defer p.Shutdown()

	f, err := pool.Submit(p, func() (int, error) { return 21 * 2, nil })
	require.NoError(t, err)

	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

// TestPoolCompute covers spec scenario 4: submit 1000 units each
// returning i*2, wait, and check the handles sum to 2*499500.
func TestPoolCompute(t *testing.T) {
	const n = 1000
	p := pool.New(8)
	defer p.Shutdown()

	futures := make([]*pool.Future[int], n)
	for i := range n {
		f, err := pool.Submit(p, func() (int, error) { return i * 2, nil })
		require.NoError(t, err)
		futures[i] = f
	}

	p.Wait()

	sum := 0
	for i, f := range futures {
		v, err := f.Wait()
		require.NoError(t, err)
		require.Equal(t, i*2, v)
		sum += v
	}
	require.Equal(t, 999000, sum)
}

// TestPoolFailurePropagation covers spec scenario 5: a task that
// returns an error surfaces it at Wait without taking the worker down,
// and the pool still executes a subsequent task correctly.
func TestPoolFailurePropagation(t *testing.T) {
	p := pool.New(2)
	defer p.Shutdown()

	boom := errors.New("boom")
	f1, err := pool.Submit(p, func() (int, error) { return 0, boom })
	require.NoError(t, err)

	_, waitErr := f1.Wait()
	require.Error(t, waitErr)
	require.True(t, pool.IsTaskFailure(waitErr))
	require.ErrorIs(t, waitErr, boom)

	f2, err := pool.Submit(p, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	v, err := f2.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

// TestPoolPanicPropagation covers the panic-as-failure path: a panicking
// task is recovered and surfaced as an ErrTaskFailure, not a crash.
func TestPoolPanicPropagation(t *testing.T) {
	p := pool.New(2)
	defer p.Shutdown()

	f, err := pool.Submit(p, func() (int, error) {
		panic("kaboom")
	})
	require.NoError(t, err)

	_, waitErr := f.Wait()
	require.Error(t, waitErr)
	require.True(t, pool.IsTaskFailure(waitErr))
	require.Contains(t, waitErr.Error(), "kaboom")

	f2, err := pool.Submit(p, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	v, err := f2.Wait()
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

// TestWorkerCountCoercedToOne covers the boundary case: a pool built
// with worker count 0 still has at least one worker and still works.
func TestWorkerCountCoercedToOne(t *testing.T) {
	p := pool.New(0)
	defer p.Shutdown()

	f, err := pool.Submit(p, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, "ok", v)
}

// TestShutdownDrainsPending submits a batch of tasks and
// checks Shutdown does not return until every one of them has run.
func TestShutdownDrainsPending(t *testing.T) {
	p := pool.New(4)

	const n = 200
	futures := make([]*pool.Future[int], n)
	for i := range n {
		f, err := pool.Submit(p, func() (int, error) { return i, nil })
		require.NoError(t, err)
		futures[i] = f
	}

	p.Shutdown()

	require.Equal(t, 0, p.ActiveTasks())
	require.Equal(t, 0, p.QueuedTasks())
	for i, f := range futures {
		v, err := f.Wait()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

// TestSubmitAfterShutdownRejected covers §7 UseAfterShutdown: once
// shutdown has begun, Submit must not silently accept new work.
func TestSubmitAfterShutdownRejected(t *testing.T) {
	p := pool.New(2)
	p.Shutdown()

	_, err := pool.Submit(p, func() (int, error) { return 1, nil })
	require.Error(t, err)
	require.True(t, pool.IsShutdown(err))
}

// TestConcurrentSubmitters stresses many goroutines submitting
// concurrently using errgroup, verifying every result comes back
// correct and the pool's own bookkeeping settles to zero.
func TestConcurrentSubmitters(t *testing.T) {
	p := pool.New(8)
	defer p.Shutdown()

	const submitters = 16
	const perSubmitter = 100

	var g errgroup.Group
	for s := range submitters {
		s := s
		g.Go(func() error {
			for i := range perSubmitter {
				want := s*perSubmitter + i
				f, err := pool.Submit(p, func() (int, error) { return want, nil })
				if err != nil {
					return err
				}
				got, err := f.Wait()
				if err != nil {
					return err
				}
				if got != want {
					return errors.New("mismatched result")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	p.Wait()
	require.Equal(t, 0, p.ActiveTasks())
	require.Equal(t, 0, p.QueuedTasks())
}
