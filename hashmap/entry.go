// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"code.hybscloud.com/atomix"

	"github.com/ErselSeyit/concurrent-data-structures/internal/rt"
)

// entry is one node in a bucket's singly linked chain. value is an
// atomic pointer so Insert can replace it with a single swap without
// touching the chain, and tombstone is claimed with a CAS before an
// entry is physically unlinked so at most one eraser ever wins the
// right to unlink a given entry.
type entry[K comparable, V any] struct {
	key       K
	_         rt.Pad
	value     atomix.Pointer[V]
	next      atomix.Pointer[entry[K, V]]
	tombstone atomix.Bool
}

// findFrom walks the chain starting at start looking for a live
// (non-tombstoned) entry matching k. It never blocks: a tombstoned
// entry is skipped, never waited on.
func findFrom[K comparable, V any](start *entry[K, V], k K) *entry[K, V] {
	for cur := start; cur != nil; cur = cur.next.LoadAcquire() {
		if !cur.tombstone.LoadAcquire() && cur.key == k {
			return cur
		}
	}
	return nil
}

// bucket is a single chain slot, padded onto its own cache lines so
// that concurrent traffic on neighboring buckets does not false-share.
type bucket[K comparable, V any] struct {
	_    rt.Pad
	head atomix.Pointer[entry[K, V]]
	_    rt.Pad
}
