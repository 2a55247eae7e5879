// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"fmt"

	"github.com/ErselSeyit/concurrent-data-structures/queue"
)

// ExampleQueue demonstrates the basic enqueue/dequeue round trip.
func ExampleQueue() {
	q := queue.New[string]()
	q.Enqueue("first")
	q.Enqueue("second")

	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// first
	// second
}
