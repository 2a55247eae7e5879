// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"hash/maphash"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"github.com/ErselSeyit/concurrent-data-structures/internal/rt"
)

// DefaultBucketCount is used by New when bucketCount <= 0.
const DefaultBucketCount = 1024

// InsertResult reports whether Insert created a new entry or replaced
// an existing one.
type InsertResult int

const (
	// Inserted means the key was absent and a new entry was created.
	Inserted InsertResult = iota
	// Updated means the key was already present and its value holder
	// was atomically replaced.
	Updated
)

func (r InsertResult) String() string {
	if r == Inserted {
		return "inserted"
	}
	return "updated"
}

// Map is a concurrent hash map with a fixed bucket array and per-bucket
// separate chaining. Reads are lock-free; writes retry on CAS failure.
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	buckets []bucket[K, V]
	mask    uint64
	seed    maphash.Seed
	size    atomix.Int64
	gc      *rt.Collector
}

// New constructs a map with bucketCount buckets, rounded up to the next
// power of two. bucketCount <= 0 selects DefaultBucketCount.
func New[K comparable, V any](bucketCount int) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	n := uint64(rt.RoundToPow2(bucketCount))
	return &Map[K, V]{
		buckets: make([]bucket[K, V], n),
		mask:    n - 1,
		seed:    maphash.MakeSeed(),
		gc:      rt.NewCollector(),
	}
}

func (m *Map[K, V]) bucketFor(k K) *bucket[K, V] {
	h := maphash.Comparable(m.seed, k)
	return &m.buckets[h&m.mask]
}

// Get returns the current value for k, or (zero, false) if k is absent
// or has been erased.
func (m *Map[K, V]) Get(k K) (V, bool) {
	g := m.gc.Pin()
	defer g.Unpin()

	b := m.bucketFor(k)
	e := findFrom(b.head.LoadAcquire(), k)
	if e == nil {
		var zero V
		return zero, false
	}
	vp := e.value.LoadAcquire()
	if vp == nil {
		var zero V
		return zero, false
	}
	return *vp, true
}

// Contains reports whether k has a live entry.
func (m *Map[K, V]) Contains(k K) bool {
	g := m.gc.Pin()
	defer g.Unpin()

	b := m.bucketFor(k)
	return findFrom(b.head.LoadAcquire(), k) != nil
}

// Insert creates or replaces the value for k and reports which it did.
//
// Two concurrent Insert calls for the same previously absent key can
// both observe it as absent and both publish a new entry; see
// resolveDuplicate for how the second entry is detected and unlinked so
// exactly one live entry for k survives.
func (m *Map[K, V]) Insert(k K, v V) InsertResult {
	g := m.gc.Pin()
	defer g.Unpin()

	b := m.bucketFor(k)

	if e := findFrom(b.head.LoadAcquire(), k); e != nil {
		m.swapValue(e, v)
		return Updated
	}

	newEntry := &entry[K, V]{key: k}
	newEntry.value.StoreRelaxed(&v)

	head := b.head.LoadAcquire()
	newEntry.next.StoreRelaxed(head)

	sw := spin.Wait{}
	for !b.head.CompareAndSwapAcqRel(head, newEntry) {
		head = b.head.LoadAcquire()
		newEntry.next.StoreRelaxed(head)
		sw.Once()
	}
	m.size.AddAcqRel(1)

	return m.resolveDuplicate(b, newEntry)
}

// resolveDuplicate corrects the same-key insert race described in the
// package's design notes: newEntry has just won the head CAS, so any
// other live entry for the same key that was already in the chain is
// reachable from newEntry.next. If one is found, it raced us to create
// the key and loses: it is tombstoned and unlinked the same way Erase
// claims a node, and this call reports Updated instead of Inserted,
// since by the time the race is resolved the key already existed.
func (m *Map[K, V]) resolveDuplicate(b *bucket[K, V], newEntry *entry[K, V]) InsertResult {
	dup := findFrom(newEntry.next.LoadAcquire(), newEntry.key)
	if dup == nil {
		return Inserted
	}
	if m.claim(dup) {
		m.unlinkClaimed(b, dup)
	}
	return Updated
}

// swapValue installs a new value holder for an existing entry.
func (m *Map[K, V]) swapValue(e *entry[K, V], v V) {
	old := e.value.SwapAcqRel(&v)
	m.gc.Retire(func() {
		_ = old
	})
}

// Erase removes k's live entry, if any, and reports whether one existed.
func (m *Map[K, V]) Erase(k K) bool {
	g := m.gc.Pin()
	defer g.Unpin()

	b := m.bucketFor(k)

	sw := spin.Wait{}
	for {
		e := findFrom(b.head.LoadAcquire(), k)
		if e == nil {
			return false
		}
		if !m.claim(e) {
			// Another eraser already tombstoned this entry between our
			// find and our claim attempt; the key might already be
			// gone, or a fresh entry might have been inserted since —
			// restart the search.
			sw.Once()
			continue
		}
		m.unlinkClaimed(b, e)
		return true
	}
}

// claim atomically transitions e from live to tombstoned. Only the
// thread whose CAS succeeds owns the right to unlink and reclaim e.
func (m *Map[K, V]) claim(e *entry[K, V]) bool {
	return e.tombstone.CompareAndSwapAcqRel(false, true)
}

// unlinkClaimed physically removes an already-tombstoned entry from its
// bucket's chain, decrements size, and retires it for reclamation.
func (m *Map[K, V]) unlinkClaimed(b *bucket[K, V], victim *entry[K, V]) {
	m.physicallyUnlink(b, victim)
	m.size.AddAcqRel(-1)

	old := victim.value.SwapAcqRel(nil)
	m.gc.Retire(func() {
		_ = old
		_ = victim
	})
}

// physicallyUnlink removes victim from b's chain, retrying against
// concurrent structural changes the way the bucket head CAS retries
// against concurrent inserts.
func (m *Map[K, V]) physicallyUnlink(b *bucket[K, V], victim *entry[K, V]) {
	sw := spin.Wait{}
	for {
		head := b.head.LoadAcquire()
		if head == victim {
			if b.head.CompareAndSwapAcqRel(head, victim.next.LoadAcquire()) {
				return
			}
			sw.Once()
			continue
		}

		prev := head
		removed := false
		stale := false
		for prev != nil {
			next := prev.next.LoadAcquire()
			if next == victim {
				if prev.next.CompareAndSwapAcqRel(victim, victim.next.LoadAcquire()) {
					removed = true
				} else {
					stale = true
				}
				break
			}
			if next == nil {
				break // victim is no longer reachable; already unlinked
			}
			prev = next
		}
		if removed || !stale {
			return
		}
		sw.Once()
	}
}

// Size returns the number of live entries. It is monotone between
// concurrent modifications, up to transient skew while an insert or
// erase is in flight.
func (m *Map[K, V]) Size() int {
	return int(m.size.LoadAcquire())
}

// Empty reports whether Size() == 0.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}
