// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package roomsched

import (
	"container/heap"
	"time"
)

// endTimeHeap is a min-heap of booking end-times, the Go equivalent of the
// reference's BinaryHeap<Reverse<IntervalType>>. Duplicate entries are
// permitted; cancellation does not remove them (see cleanup_worker.go).
type endTimeHeap []time.Time

func (h endTimeHeap) Len() int            { return len(h) }
func (h endTimeHeap) Less(i, j int) bool  { return h[i].Before(h[j]) }
func (h endTimeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *endTimeHeap) Push(x any)         { *h = append(*h, x.(time.Time)) }

func (h *endTimeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// peek returns the smallest end-time without removing it. Callers must
// check Len() > 0 first.
func (h endTimeHeap) peek() time.Time { return h[0] }

var _ heap.Interface = (*endTimeHeap)(nil)
