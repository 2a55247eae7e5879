// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rt

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// unpinned marks a guard slot as not currently protecting any epoch.
const unpinned = ^uint64(0)

// numEpochBuckets is the number of garbage generations kept in flight.
// A bucket is only reclaimed once the global epoch has advanced twice
// past the epoch it was retired under, so nothing pinned at retirement
// time can still observe it.
const numEpochBuckets = 3

// maxGuardSlots bounds the reclaimer's slot table. Pin scans for a free
// slot; a generous fixed table keeps Pin lock-free without unbounded
// growth, trading a little memory for avoiding a slot-growth path on the
// hot Enqueue/Dequeue/Get/Insert/Erase call chain.
const maxGuardSlots = 4096

// guardSlot tracks one in-flight reader. Each slot is padded onto its
// own cache lines so that one goroutine's Pin/Unpin does not
// false-share with a neighboring slot's traffic.
type guardSlot struct {
	_     Pad
	inUse atomix.Bool
	local atomix.Uint64
	_     Pad
}

// bucket is a generation of retired reclamation thunks awaiting a quiet
// epoch. A bucket's mutex, taken to append in Retire and to drain in
// tryAdvance, is the only lock in this package. Retire runs inside a
// successful Dequeue and inside Insert and Erase calls that remove or
// replace a value, so those calls take it; Pin and Unpin do not.
type bucket struct {
	mu    sync.Mutex
	items []func()
}

// Collector is an epoch-based reclaimer shared by the queue and hashmap
// packages. A goroutine calls Pin before touching shared node/entry
// pointers and Unpin when done; Retire defers a free until no pinned
// goroutine can still observe the freed object.
type Collector struct {
	global  atomix.Uint64
	slots   [maxGuardSlots]guardSlot
	buckets [numEpochBuckets]bucket
}

// NewCollector constructs an epoch reclaimer. Each queue/map instance
// owns one; they are not shared across unrelated data structures so
// that one structure's retirement pressure cannot stall another's.
func NewCollector() *Collector {
	return &Collector{}
}

// Guard is the token returned by Pin. Unpin must be called exactly once,
// normally via defer, to release the slot back to the pool.
type Guard struct {
	c   *Collector
	idx int
}

// Pin marks the calling goroutine as active at the current global epoch
// and returns a Guard that must be unpinned when the caller is done
// dereferencing shared structure pointers. Pin never blocks on another
// pinned goroutine; it only contends with other Pin/Unpin calls over
// slot ownership.
func (c *Collector) Pin() *Guard {
	sw := spin.Wait{}
	for {
		for i := range c.slots {
			s := &c.slots[i]
			if s.inUse.LoadAcquire() {
				continue
			}
			if s.inUse.CompareAndSwapAcqRel(false, true) {
				s.local.StoreRelease(c.global.LoadAcquire())
				return &Guard{c: c, idx: i}
			}
		}
		// All slots momentarily busy; vanishingly rare at the table's
		// default size. Spin rather than grow to keep Pin allocation-free.
		sw.Once()
	}
}

// Unpin releases the guard's slot. The slot is marked unpinned before it
// is freed for reuse so a concurrent tryAdvance cannot observe a stale
// pinned epoch after the slot has already been handed to another
// goroutine.
func (g *Guard) Unpin() {
	s := &g.c.slots[g.idx]
	s.local.StoreRelease(unpinned)
	s.inUse.StoreRelease(false)
}

// Retire schedules free to run once no goroutine pinned at or before the
// current epoch can still be dereferencing the object it frees. Retire
// also makes a best-effort attempt to advance the epoch and drain a
// now-quiet bucket; callers do not need to call anything else.
func (c *Collector) Retire(free func()) {
	e := c.global.LoadAcquire()
	b := &c.buckets[e%numEpochBuckets]
	b.mu.Lock()
	b.items = append(b.items, free)
	b.mu.Unlock()

	c.tryAdvance(e)
}

// tryAdvance bumps the global epoch if every pinned guard has observed
// at least the epoch it was last asked to advance past, then reclaims
// the bucket that is now two generations stale.
func (c *Collector) tryAdvance(observed uint64) {
	for i := range c.slots {
		s := &c.slots[i]
		if !s.inUse.LoadAcquire() {
			continue
		}
		local := s.local.LoadAcquire()
		if local != unpinned && local < observed {
			return // someone is still pinned behind the observed epoch
		}
	}

	if !c.global.CompareAndSwapAcqRel(observed, observed+1) {
		return // another goroutine already advanced; it will drain
	}

	stale := &c.buckets[(observed+1+1)%numEpochBuckets]
	stale.mu.Lock()
	drain := stale.items
	stale.items = nil
	stale.mu.Unlock()

	for _, free := range drain {
		free()
	}
}
