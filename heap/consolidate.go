package heap

import "math"

// consolidate restores the invariant "no two top-level trees share a
// degree" and recomputes the min pointer. It is the dense part of the
// structure: the classic carry-propagation bucket merge.
//
// Steps:
//
//  1. Allocate a bucket per possible root degree. For n payloads no root
//     degree exceeds floor(log_phi(n)), phi being the golden ratio, so
//     floor(log_phi(n)) + 1 buckets suffice.
//  2. Return the provisional min tree to the front of the root list so it
//     drains together with every other root.
//  3. Drain the root list front to back. Each tree lands in the bucket for
//     its degree; on collision the two trees link (first argument wins
//     ties) and the merged tree carries into the next bucket, like binary
//     addition.
//  4. Sweep buckets in ascending degree order, rebuilding the root list
//     and the min pointer with the same compare-and-promote rule as Push.
//
// Total work is O(roots + log n), amortized O(log n) per Pop.
func (h *FibonacciHeap[T]) consolidate() {
	// Nothing to consolidate.
	if h.IsEmpty() {
		return
	}

	// 1) Degree-indexed buckets, sized by the golden-ratio bound on the
	//    current element count.
	buckets := make([]*tree[T], maxRootDegree(h.size)+1)

	// 2) The provisional min participates in the same drain.
	drain := make([]*tree[T], 0, len(h.roots)+1)
	drain = append(drain, h.min)
	drain = append(drain, h.roots...)
	h.min = nil
	h.roots = nil

	// 3) Bucket every tree, linking on degree collisions.
	for _, x := range drain {
		d := x.degree()
		for {
			// Defensive growth: floating-point rounding in the bound must
			// never turn into an index panic.
			for d >= len(buckets) {
				buckets = append(buckets, nil)
			}
			y := buckets[d]
			if y == nil {
				break
			}
			buckets[d] = nil
			x = link(x, y)
			d = x.degree()
		}
		buckets[d] = x
	}

	// 4) Ascending-degree sweep: rebuild the root list and find the true
	//    minimum in one pass, Push-style (smaller-or-equal takes over the
	//    min pointer, the previous holder is demoted to the root list).
	for _, x := range buckets {
		if x == nil {
			continue
		}
		switch {
		case h.min == nil:
			h.min = x
		case x.le(h.min):
			h.roots = append(h.roots, h.min)
			h.min = x
		default:
			h.roots = append(h.roots, x)
		}
	}
}

// maxRootDegree is the golden-ratio degree bound: no root of an n-element
// Fibonacci heap has degree greater than floor(log_phi(n)).
func maxRootDegree(n int) int {
	return int(math.Log(float64(n)) / math.Log(math.Phi))
}
