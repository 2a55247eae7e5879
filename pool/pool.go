// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"

	"github.com/ErselSeyit/concurrent-data-structures/queue"
)

// lifecycle states, stored in Pool.state.
const (
	stateRunning uint32 = iota
	stateDraining
	stateStopped
)

// idleTick bounds how long an idle worker can sleep before re-checking
// the queue and the stop flag, giving Shutdown a liveness guarantee
// even if a signal races a worker into its wait.
const idleTick = 100 * time.Millisecond

// task is the element type of the pool's internal queue: a zero-argument
// unit of work that reports its own outcome to whichever Future it
// closes over. Submit is the only place a task is constructed, and it
// is generic over R so the pool itself can stay non-generic and hold
// heterogeneous result types.
type task struct {
	run func()
}

// Pool is a fixed-size worker pool consuming tasks from a shared
// internal queue.Queue. Construct with New; tear down with Shutdown.
type Pool struct {
	q      *queue.Queue[task]
	mu     sync.Mutex
	cond   *sync.Cond
	state  atomix.Uint32
	active atomix.Int64
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New starts a pool with the given number of workers. workers <= 0 is
// coerced to 1.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{
		q:      queue.New[task](),
		stopCh: make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)

	go p.idleBroadcaster()

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// idleBroadcaster periodically wakes every worker blocked in cond.Wait
// so a worker never sleeps past idleTick without re-checking the queue
// and the stop flag, standing in for a timed condition-variable wait.
func (p *Pool) idleBroadcaster() {
	t := time.NewTicker(idleTick)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			p.mu.Lock()
			p.cond.Broadcast()
			p.mu.Unlock()
		case <-p.stopCh:
			return
		}
	}
}

// worker is the loop every pool goroutine runs: try-dequeue, and if the
// queue is empty, idle on the condition variable until woken by a new
// submission, the periodic tick, or shutdown.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		if t, ok := p.q.Dequeue(); ok {
			p.runTask(t)
			continue
		}
		if p.state.LoadAcquire() == stateStopped {
			return
		}

		p.mu.Lock()
		if p.q.Empty() && p.state.LoadAcquire() != stateStopped {
			p.cond.Wait()
		}
		p.mu.Unlock()
	}
}

// runTask executes a dequeued task, bracketing it with the active-task
// counter used by Wait and ActiveTasks. task.run itself recovers its
// own panics (see Submit), so this never needs its own recover.
func (p *Pool) runTask(t task) {
	p.active.AddAcqRel(1)
	t.run()
	p.active.AddAcqRel(-1)

	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Wait blocks until every task submitted before Wait was called has
// completed: the queue is empty and no worker has a task in flight.
// It is a full drain barrier for submissions that happened-before its
// call, matching the pool's ordering guarantee.
func (p *Pool) Wait() {
	p.mu.Lock()
	for !p.q.Empty() || p.active.LoadAcquire() != 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// ActiveTasks returns the number of tasks currently executing.
func (p *Pool) ActiveTasks() int {
	return int(p.active.LoadAcquire())
}

// QueuedTasks returns a best-effort estimate of tasks waiting to start,
// inherited from the underlying queue's ApproxSize.
func (p *Pool) QueuedTasks() int {
	return p.q.ApproxSize()
}

// Shutdown drains all outstanding work, stops accepting new submissions,
// and joins every worker before returning: it waits for pending tasks,
// then marks the pool stopped, broadcasts to wake idle workers, and
// joins them, in that order. Calling Shutdown more than once, or
// submitting after it has begun, is a programmer error; see
// ErrShutdown and the package's design notes.
func (p *Pool) Shutdown() {
	p.state.StoreRelease(stateDraining)
	p.Wait()

	p.state.StoreRelease(stateStopped)
	close(p.stopCh)

	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}
