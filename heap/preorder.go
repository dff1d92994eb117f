package heap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// preorder returns a lazy, restartable pre-order sequence over the
// subtree rooted at t: the root payload first, then each child subtree in
// insertion order. The traversal uses an explicit stack, so arbitrarily
// deep (degenerate) trees cannot exhaust the call stack.
func (t *tree[T]) preorder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := []*tree[T]{t}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(x.payload) {
				return
			}

			// Children are pushed in reverse so the first child is
			// visited first.
			for i := len(x.children) - 1; i >= 0; i-- {
				stack = append(stack, x.children[i])
			}
		}
	}
}

// All returns a lazy, restartable pre-order sequence over every payload in
// the heap: the minimum tree first, then each remaining root-list tree in
// list order. Only the first value is guaranteed to be the minimum; the
// rest follow structural order, not sorted order.
//
// The sequence reflects the heap at iteration time; mutating the heap
// mid-iteration is undefined.
func (h *FibonacciHeap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if h.min == nil {
			return
		}
		for v := range h.min.preorder() {
			if !yield(v) {
				return
			}
		}
		for _, root := range h.roots {
			for v := range root.preorder() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// PreOrder renders the heap's internal shape as text, one line per
// top-level tree: the minimum tree labeled "Min:", then each root-list
// tree labeled "Tree k:" (1-indexed), payloads space-separated in
// pre-order, each line newline-terminated. An empty heap renders as "".
//
// This is a diagnostic dump for tests and debugging, not a persisted
// format. O(n).
func (h *FibonacciHeap[T]) PreOrder() string {
	if h.min == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("Min:")
	writeTree(&sb, h.min)

	for k, root := range h.roots {
		fmt.Fprintf(&sb, "Tree %d:", k+1)
		writeTree(&sb, root)
	}

	return sb.String()
}

// writeTree appends " p1 p2 ... pn\n" for the pre-order payloads of t.
func writeTree[T cmp.Ordered](sb *strings.Builder, t *tree[T]) {
	for v := range t.preorder() {
		fmt.Fprintf(sb, " %v", v)
	}
	sb.WriteByte('\n')
}
