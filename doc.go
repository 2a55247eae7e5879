// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package concurrentdatastructures documents the concurrent-data-structures
// module: a library of three concurrent data structures built for true
// multi-threaded Go programs:
//
//   - [github.com/ErselSeyit/concurrent-data-structures/queue]: an
//     unbounded lock-free FIFO queue.
//   - [github.com/ErselSeyit/concurrent-data-structures/hashmap]: a
//     concurrent hash map with lock-free reads and CAS-retry writes.
//   - [github.com/ErselSeyit/concurrent-data-structures/pool]: a
//     fixed-size worker pool built atop the queue package.
//
// This root package holds no exported API of its own; import the
// subpackage you need. [github.com/ErselSeyit/concurrent-data-structures/cmd/cdsbench]
// is a small command-line driver that exercises all three together.
//
// Memory reclamation for the queue and hash map uses an epoch-based
// collector in
// [github.com/ErselSeyit/concurrent-data-structures/internal/rt],
// alongside the cache-line padding helpers both packages share.
package concurrentdatastructures
