// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "code.hybscloud.com/atomix"

// futureState enumerates the three states of a Future's SPSC cell.
type futureState uint32

const (
	pending futureState = iota
	fulfilledValue
	fulfilledError
)

// Future is a one-shot single-producer/single-consumer result handle
// for a task submitted to a Pool. Exactly one worker fulfills it;
// exactly one submitter is expected to call Wait, though a second Wait
// is safe and simply returns the already-cached result.
type Future[R any] struct {
	state atomix.Uint32
	done  chan struct{}
	value R
	err   error
}

// newFuture constructs an unfulfilled handle.
func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// fulfill publishes a successful result. It must be called at most
// once, by the worker that owns this handle.
func (f *Future[R]) fulfill(v R) {
	f.value = v
	f.state.StoreRelease(uint32(fulfilledValue))
	close(f.done)
}

// fail publishes a task failure. It must be called at most once, by
// the worker that owns this handle.
func (f *Future[R]) fail(err error) {
	f.err = &ErrTaskFailure{Cause: err}
	f.state.StoreRelease(uint32(fulfilledError))
	close(f.done)
}

// Wait blocks until the task completes, then returns its value and
// error. Calling Wait again after it has already returned is safe and
// returns the same cached result; see the package's design notes for
// why this is the chosen resolution of the spec's "implementer's
// choice" branch for a second wait.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.value, f.err
}

// Done reports whether the task has completed without blocking.
func (f *Future[R]) Done() bool {
	return futureState(f.state.LoadAcquire()) != pending
}
