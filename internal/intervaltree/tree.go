// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package intervaltree implements the augmented binary search tree that
// backs the scheduler's interval index: a BST ordered on the interval's low
// endpoint, augmented with the max high endpoint of each subtree so overlap
// queries can prune whole branches.
//
// Unlike the reference implementation this index is built from (see
// DESIGN.md), max_high is recomputed along the full ancestor path on every
// insert and remove, not just at node-construction time — omitting that
// recomputation silently drops results from overlap queries.
package intervaltree

// Ordered is the minimal comparability an interval endpoint type needs.
// time.Time isn't naturally `<`-comparable in Go, so endpoints are
// compared through this function rather than the `<` operator the
// reference source uses directly on its numeric IntervalType.
type Ordered[T any] interface {
	Compare(T) int
}

// less reports whether a < b for anything implementing Ordered.
func less[T Ordered[T]](a, b T) bool { return a.Compare(b) < 0 }

func maxOf[T Ordered[T]](a, b T) T {
	if less(a, b) {
		return b
	}
	return a
}

// Entry is a single stored interval with one of its payloads; returned by
// the read-only queries as a flat, order-insensitive snapshot.
type Entry[T Ordered[T], P comparable] struct {
	Low, High T
	Payload   P
}

type node[T Ordered[T], P comparable] struct {
	low, high T
	maxHigh   T
	payloads  map[P]struct{}

	left, right *node[T, P]
}

func newNode[T Ordered[T], P comparable](low, high T, payload P) *node[T, P] {
	return &node[T, P]{
		low:      low,
		high:     high,
		maxHigh:  high,
		payloads: map[P]struct{}{payload: {}},
	}
}

func (n *node[T, P]) recomputeMaxHigh() {
	m := n.high
	if n.left != nil {
		m = maxOf(m, n.left.maxHigh)
	}
	if n.right != nil {
		m = maxOf(m, n.right.maxHigh)
	}
	n.maxHigh = m
}

// Index is the augmented interval BST described in §4.1 of the spec: BST
// order on low, max_high augmentation, multi-payload nodes, two interval
// queries plus Empty, and the Insert and Remove mutators. It is not self-balancing and not safe for
// concurrent use — callers (the Scheduler) are responsible for
// serializing access.
type Index[T Ordered[T], P comparable] struct {
	root *node[T, P]
}

// New creates an empty interval index.
func New[T Ordered[T], P comparable]() *Index[T, P] {
	return &Index[T, P]{}
}

// Empty reports whether the index holds no intervals.
func (idx *Index[T, P]) Empty() bool { return idx.root == nil }

// Insert adds payload to the interval (low, high), creating a new node if
// no existing node shares that exact (low, high) pair, or merging the
// payload into the existing node's set otherwise. Preconditions: low and
// high must already satisfy low <= high; callers normalize before calling
// (see Scheduler), since Insert itself is a precondition-trusting total
// function over ordered endpoints.
func (idx *Index[T, P]) Insert(low, high T, payload P) {
	if idx.root == nil {
		idx.root = newNode[T, P](low, high, payload)
		return
	}
	path := make([]*node[T, P], 0, 8)
	n := idx.root
	for {
		path = append(path, n)
		switch {
		case low.Compare(n.low) == 0 && high.Compare(n.high) == 0:
			n.payloads[payload] = struct{}{}
			recomputePath(path)
			return
		case less(low, n.low):
			if n.left == nil {
				n.left = newNode[T, P](low, high, payload)
				path = append(path, n.left)
				recomputePath(path)
				return
			}
			n = n.left
		default:
			if n.right == nil {
				n.right = newNode[T, P](low, high, payload)
				path = append(path, n.right)
				recomputePath(path)
				return
			}
			n = n.right
		}
	}
}

// recomputePath recomputes maxHigh bottom-up along a root-to-node path,
// closing the gap noted in the spec: the reference only sets max_high in
// the node constructor and never restores it on ancestors afterward.
func recomputePath[T Ordered[T], P comparable](path []*node[T, P]) {
	for i := len(path) - 1; i >= 0; i-- {
		path[i].recomputeMaxHigh()
	}
}

// Remove deletes payload from the node matching (low, high) exactly. If
// payload is nil, every payload at that node is cleared regardless of the
// set's prior size. If the node's payload set becomes empty it is spliced
// out of the tree by standard BST deletion (in-order successor for the
// two-child case). A (low, high) with no matching node is a no-op.
func (idx *Index[T, P]) Remove(low, high T, payload *P) {
	idx.root = remove(idx.root, low, high, payload)
}

func remove[T Ordered[T], P comparable](n *node[T, P], low, high T, payload *P) *node[T, P] {
	if n == nil {
		return nil
	}

	switch {
	case less(low, n.low):
		n.left = remove(n.left, low, high, payload)
		n.recomputeMaxHigh()
		return n
	case less(n.low, low):
		n.right = remove(n.right, low, high, payload)
		n.recomputeMaxHigh()
		return n
	case high.Compare(n.high) != 0:
		// Same low, different high: the match, if any, lives in a node
		// further down — low ties break toward the right subtree on
		// insert, so search there first, then left for safety.
		n.right = remove(n.right, low, high, payload)
		n.left = remove(n.left, low, high, payload)
		n.recomputeMaxHigh()
		return n
	}

	// Exact (low, high) match.
	if payload != nil {
		delete(n.payloads, *payload)
	} else {
		n.payloads = map[P]struct{}{}
	}

	if len(n.payloads) > 0 {
		n.recomputeMaxHigh()
		return n
	}

	// Splice the now-empty node out of the tree.
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.low, n.high, n.payloads = succ.low, succ.high, succ.payloads
		n.right = remove(n.right, succ.low, succ.high, nil)
		n.recomputeMaxHigh()
		return n
	}
}

// OverlappingIntervals returns every stored (low, high, payload) whose open
// interval overlaps the open interval (low, high), i.e. low < high_i &&
// high > low_i. The query arguments are normalized so low <= high before
// searching, matching the reference's min/max swap for unnormalized input.
func (idx *Index[T, P]) OverlappingIntervals(low, high T) []Entry[T, P] {
	if less(high, low) {
		low, high = high, low
	}
	var out []Entry[T, P]
	overlapping(idx.root, low, high, &out)
	return out
}

func overlapping[T Ordered[T], P comparable](n *node[T, P], low, high T, out *[]Entry[T, P]) {
	if n == nil {
		return
	}
	if less(low, n.high) && less(n.low, high) {
		for p := range n.payloads {
			*out = append(*out, Entry[T, P]{Low: n.low, High: n.high, Payload: p})
		}
	}
	// Left may hold an overlap only if some interval under it reaches far
	// enough to the right (max_high >= low); BST order is on low, not
	// high, so the right subtree is always a candidate.
	if n.left != nil && !less(n.left.maxHigh, low) {
		overlapping(n.left, low, high, out)
	}
	overlapping(n.right, low, high, out)
}

// IntervalsEndingBefore returns every stored (low, high, payload) with
// high <= endValue. The result is unordered.
func (idx *Index[T, P]) IntervalsEndingBefore(endValue T) []Entry[T, P] {
	var out []Entry[T, P]
	endingBefore(idx.root, endValue, &out)
	return out
}

func endingBefore[T Ordered[T], P comparable](n *node[T, P], endValue T, out *[]Entry[T, P]) {
	if n == nil {
		return
	}
	if !less(endValue, n.high) {
		for p := range n.payloads {
			*out = append(*out, Entry[T, P]{Low: n.low, High: n.high, Payload: p})
		}
	}
	endingBefore(n.left, endValue, out)
	endingBefore(n.right, endValue, out)
}
