// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rt holds helpers shared by queue, hashmap, and cmd/cdsbench:
// cache-line padding, power-of-two rounding, an epoch-based reclaimer,
// the RaceEnabled build flag, and non-failure error classification.
package rt

// Pad is cache line padding to prevent false sharing between adjacent
// atomic fields, following the same convention as the queue package this
// module descends from.
type Pad [64]byte

// RoundToPow2 rounds n up to the next power of 2, with a floor of 2.
func RoundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
