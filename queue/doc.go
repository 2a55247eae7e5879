// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides an unbounded, lock-free multi-producer
// multi-consumer FIFO queue.
//
// Unlike a bounded ring-buffer queue, queue never rejects an Enqueue for
// being full: the backing list grows node by node. Dequeue is non-blocking — it returns immediately, with a
// false ok when the queue is empty rather than waiting for a producer.
//
// # Basic usage
//
//	q := queue.New[int]()
//	q.Enqueue(42)
//	v, ok := q.Dequeue() // v == 42, ok == true
//	_, ok = q.Dequeue()  // ok == false, queue empty
//
// # Algorithm
//
// The queue follows Michael & Scott's 1996 lock-free FIFO: a singly
// linked list with a permanent dummy node at the head. Enqueue allocates
// a node and exchanges it into tail, then publishes the link from the
// previous tail. Dequeue reads head and head's successor; if a successor
// exists, it is claimed by a CAS on head and its payload is handed to
// the caller.
//
// # Memory reclamation
//
// A node dequeued by one goroutine may still be reachable from a
// concurrent Enqueue's stale tail pointer, or from another goroutine's
// in-flight Dequeue retry. queue uses the epoch-based reclaimer in
// internal/rt to defer freeing a node until no goroutine can still be
// looking at it, rather than leaking nodes for the structure's lifetime.
// Retiring a node appends to a mutex-guarded list in internal/rt, so a
// successful Dequeue briefly takes that lock; Enqueue, Empty, and an
// empty Dequeue take no lock.
package queue
