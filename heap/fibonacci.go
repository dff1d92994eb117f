// Fibonacci heap: an unordered list of heap-ordered trees plus a detached
// pointer to the minimum-rooted tree. Push and Merge are lazy (O(1));
// Pop promotes the extracted root's children and then consolidates.
package heap

import "cmp"

// FibonacciHeap is a mergeable minimum-priority queue over any ordered
// payload type.
//
// Invariants:
//
//   - min is nil iff size == 0; otherwise min's root payload is <= every
//     root payload in roots.
//   - min is held outside roots; roots never contains the minimum tree.
//   - size counts every payload across roots and min.
//
// The zero value is NOT ready to use; construct with NewFibonacciHeap.
// Not safe for concurrent use.
type FibonacciHeap[T cmp.Ordered] struct {
	// roots holds every top-level tree except the minimum one.
	// Order matters only for determinism of consolidation and PreOrder.
	roots []*tree[T]

	// size is the total number of payloads in the heap.
	size int

	// min owns the tree whose root holds the current minimum.
	min *tree[T]
}

// NewFibonacciHeap returns an empty heap.
func NewFibonacciHeap[T cmp.Ordered]() *FibonacciHeap[T] {
	return &FibonacciHeap[T]{}
}

// Push inserts v in O(1). The new singleton tree either takes over the min
// pointer (when v is smaller than or equal to the current minimum — ties
// favor the newcomer) or joins the back of the root list. No consolidation
// happens here; the cost is deferred to a later Pop.
func (h *FibonacciHeap[T]) Push(v T) {
	n := newTree(v)

	switch {
	case h.min == nil:
		// Empty heap: the newcomer is the minimum.
		h.min = n
	case n.le(h.min):
		// Newcomer wins: demote the old minimum into the root list.
		h.roots = append(h.roots, h.min)
		h.min = n
	default:
		h.roots = append(h.roots, n)
	}

	h.size++
}

// Merge unions h with other and returns the combined heap in O(1)
// amortized. Both operands are consumed: after Merge returns, only the
// returned heap may be used (the operands are drained to empty so a stray
// reuse sees an empty heap rather than aliased trees).
//
// An empty (or nil) operand is a no-op union: the other operand is
// returned unchanged.
func (h *FibonacciHeap[T]) Merge(other *FibonacciHeap[T]) *FibonacciHeap[T] {
	// 1) Empty-operand policy: hand back the non-empty side untouched.
	if other == nil || other.min == nil {
		return h
	}
	if h == nil || h.min == nil {
		return other
	}

	// 2) Splice other's root list onto the end of h's.
	h.roots = append(h.roots, other.roots...)

	if other.min.le(h.min) {
		// 3a) other's minimum wins: demote h's min into the root list and
		//     adopt other's min tree wholesale. Sizes add directly.
		h.roots = append(h.roots, h.min)
		h.min = other.min
		h.size += other.size
	} else {
		// 3b) other's minimum loses: its subtrees join the root list and
		//     its payload re-enters through Push (which re-runs the min
		//     comparison). Push adds one back, hence the -1.
		h.roots = append(h.roots, other.min.children...)
		h.size += other.size - 1
		h.Push(other.min.payload)
	}

	// 4) Drain the consumed operand.
	other.roots = nil
	other.min = nil
	other.size = 0

	return h
}

// Pop removes and returns the minimum payload. The second result is false
// iff the heap is empty, in which case the heap is left untouched.
//
// The extracted root's children are promoted into the root list (keeping
// their own subtrees and degrees), then one root is taken off the front as
// a provisional minimum to seed consolidation, which merges equal-degree
// roots and locates the true minimum. O(log n) amortized.
func (h *FibonacciHeap[T]) Pop() (T, bool) {
	if h.IsEmpty() {
		var zero T

		return zero, false
	}

	// 1) Detach the minimum tree and account for the departing payload.
	minTree := h.min
	h.min = nil
	h.size--

	// 2) Promote its children: they become top-level trees.
	h.roots = append(h.roots, minTree.children...)
	minTree.children = nil

	// 3) Consume the extracted root. Nothing references it anymore, so
	//    there is no emptied node to misuse later.
	payload := minTree.payload

	// 4) Seed consolidation with an arbitrary root (the front); the true
	//    minimum is recomputed by the sweep. An emptied-out heap simply
	//    stays empty.
	if !h.IsEmpty() {
		h.min = h.roots[0]
		h.roots = h.roots[1:]

		h.consolidate()
	} else {
		h.roots = nil
	}

	return payload, true
}

// Peek returns the minimum payload without removing it. The second result
// is false iff the heap is empty. O(1).
func (h *FibonacciHeap[T]) Peek() (T, bool) {
	if h.min == nil {
		var zero T

		return zero, false
	}

	return h.min.payload, true
}

// Size returns the number of payloads currently in the heap.
func (h *FibonacciHeap[T]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no payloads.
func (h *FibonacciHeap[T]) IsEmpty() bool { return h.size == 0 }
