// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// Submit is a package-level generic function rather than a method on
// Pool: Go methods cannot introduce type parameters beyond their
// receiver's, and a single Pool must accept tasks of heterogeneous
// result types R.
//
// fn runs on some worker goroutine. If it returns a non-nil error, or
// panics, the failure is captured and surfaced from the returned
// Future's Wait instead of propagating out of the worker.
func Submit[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	if p.state.LoadAcquire() != stateRunning {
		return nil, ErrShutdown
	}

	f := newFuture[R]()
	t := task{run: func() {
		defer func() {
			if r := recover(); r != nil {
				f.fail(&panicError{value: r})
			}
		}()
		v, err := fn()
		if err != nil {
			f.fail(err)
			return
		}
		f.fulfill(v)
	}}

	p.q.Enqueue(t)

	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()

	return f, nil
}
