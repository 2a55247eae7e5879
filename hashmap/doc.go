// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hashmap provides a concurrent hash map over a fixed bucket
// array, with per-bucket separate chaining and lock-free reads.
//
// Reads (Get, Contains) never block and never retry against a writer;
// they walk a bucket's chain with acquire loads. Writes (Insert, Erase)
// retry against concurrent CAS failures on the bucket head or on a
// neighbor's next link, the same way the queue package's Dequeue
// retries against head contention.
//
// # Basic usage
//
//	m := hashmap.New[string, int](1024)
//	m.Insert("a", 1)             // Inserted
//	m.Insert("a", 2)              // Updated, last writer wins
//	v, ok := m.Get("a")           // 2, true
//	m.Erase("a")                  // true
//	_, ok = m.Get("a")             // ok == false
//
// # Iteration
//
// hashmap intentionally has no Range/iteration method: ordered or even
// unordered iteration over a concurrently mutating chain is out of scope
// (see the module's Non-goals). Code that needs a point-in-time
// enumeration should snapshot keys through its own bookkeeping.
package hashmap
