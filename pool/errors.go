// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"errors"
	"fmt"
)

// ErrShutdown is returned by Submit once a pool's shutdown has begun.
// Submitting concurrently with Shutdown is a programmer error; the pool
// detects the easy case (shutdown already signaled) rather than
// silently dropping the work unit.
var ErrShutdown = errors.New("pool: submit after shutdown")

// ErrTaskFailure wraps the error or recovered panic value produced by a
// task. Future.Wait returns this, with errors.Unwrap reaching the
// original cause, when a task did not complete successfully.
type ErrTaskFailure struct {
	Cause error
}

func (e *ErrTaskFailure) Error() string {
	return fmt.Sprintf("pool: task failed: %v", e.Cause)
}

func (e *ErrTaskFailure) Unwrap() error {
	return e.Cause
}

// IsTaskFailure reports whether err is, or wraps, an ErrTaskFailure.
func IsTaskFailure(err error) bool {
	var tf *ErrTaskFailure
	return errors.As(err, &tf)
}

// IsShutdown reports whether err is, or wraps, ErrShutdown.
func IsShutdown(err error) bool {
	return errors.Is(err, ErrShutdown)
}

// panicError wraps a recovered panic value as an error so it can travel
// through ErrTaskFailure.Cause like any other task error.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
