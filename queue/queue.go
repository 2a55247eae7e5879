// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"github.com/ErselSeyit/concurrent-data-structures/internal/rt"
)

// node is a singly linked list cell. The queue always keeps one node
// (the dummy) at head that carries no meaningful payload; real
// values live in every node reachable from head.next onward.
type node[T any] struct {
	_     rt.Pad
	next  atomix.Pointer[node[T]]
	_     rt.Pad
	value T
}

// Queue is an unbounded, lock-free multi-producer multi-consumer FIFO.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	_    rt.Pad
	head atomix.Pointer[node[T]]
	_    rt.Pad
	tail atomix.Pointer[node[T]]
	_    rt.Pad
	gc   *rt.Collector
}

// New constructs an empty queue.
func New[T any]() *Queue[T] {
	dummy := &node[T]{}
	q := &Queue[T]{gc: rt.NewCollector()}
	q.head.StoreRelaxed(dummy)
	q.tail.StoreRelaxed(dummy)
	return q
}

// Enqueue adds v to the tail of the queue. It never blocks and never
// fails except by panicking on allocation failure, same as any other Go
// heap allocation.
//
// Enqueue linearizes at the atomic exchange on tail: the order two
// concurrent Enqueue calls become visible to Dequeue is the order their
// exchanges complete.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	prevTail := q.tail.SwapAcqRel(n)
	prevTail.next.StoreRelease(n)
}

// Dequeue removes and returns the element at the head of the queue.
// ok is false iff the queue was empty at the linearization point. A
// successful Dequeue linearizes at its CAS on head; an empty result
// linearizes at the load that finds head's successor nil.
func (q *Queue[T]) Dequeue() (T, bool) {
	g := q.gc.Pin()
	defer g.Unpin()

	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		next := head.next.LoadAcquire()
		if next == nil {
			var zero T
			return zero, false
		}

		if q.head.CompareAndSwapAcqRel(head, next) {
			v := next.value
			// head is now unreachable from the queue; once no pinned
			// goroutine can still be retrying against it, drop its
			// payload reference so a large T isn't kept alive by a
			// detached node waiting on the Go garbage collector.
			q.gc.Retire(func() {
				var zero T
				head.value = zero
			})
			return v, true
		}
		sw.Once()
	}
}

// Empty reports whether the queue appeared empty at the moment of the
// call. The result may be stale immediately after it is returned.
func (q *Queue[T]) Empty() bool {
	head := q.head.LoadAcquire()
	return head.next.LoadAcquire() == nil
}

// ApproxSize walks the list under reclamation protection and returns a
// best-effort element count. It is O(n) and intended for monitoring, not
// hot-path use.
func (q *Queue[T]) ApproxSize() int {
	g := q.gc.Pin()
	defer g.Unpin()

	n := 0
	cur := q.head.LoadAcquire()
	for {
		next := cur.next.LoadAcquire()
		if next == nil {
			return n
		}
		n++
		cur = next
	}
}
