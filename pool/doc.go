// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides a fixed-size worker pool built atop the queue
// package: a shared unbounded queue of work units, with workers pulling
// from it and publishing their outcome to a one-shot result handle.
//
// # Lifecycle
//
// A Pool moves through three states: Running, Draining, Stopped.
// Submit is only accepted while Running. Shutdown drains every
// submission that happened before it was called, stops accepting new
// work, and joins every worker before returning.
//
//	p := pool.New(4)
//	f, err := pool.Submit(p, func() (int, error) { return 21 * 2, nil })
//	v, err := f.Wait()
//	p.Shutdown()
//
// # Failure propagation
//
// A task that returns an error, or panics, never kills its worker: the
// failure is captured and delivered to the task's Future instead, and
// the worker goes back to pulling work.
package pool
