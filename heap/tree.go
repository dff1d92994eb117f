package heap

import "cmp"

// tree is one heap-ordered multi-way tree: a payload plus an
// insertion-ordered slice of exclusively owned children.
//
// Heap order is maintained by construction: link makes the
// smaller-or-equal root the parent, and nothing ever reorders an existing
// parent/child pair (there is no decrease-key). The payload is not
// optional — a tree is valid for comparison and linking for its whole
// lifetime, and extraction consumes the value wholesale instead of
// leaving an emptied husk behind.
type tree[T cmp.Ordered] struct {
	payload  T
	children []*tree[T]
}

// newTree returns a degree-0 tree holding payload.
func newTree[T cmp.Ordered](payload T) *tree[T] {
	return &tree[T]{payload: payload}
}

// degree is the number of direct children; it bounds the subtree size and
// drives consolidation bucketing.
func (t *tree[T]) degree() int { return len(t.children) }

// le reports whether t's payload is smaller than or equal to other's.
func (t *tree[T]) le(other *tree[T]) bool { return t.payload <= other.payload }

// addChild appends child to t's child list, incrementing t's degree.
// Child order is insertion order; it affects only diagnostic output and
// the drain order of consolidation, never the minimum.
func (t *tree[T]) addChild(child *tree[T]) {
	t.children = append(t.children, child)
}

// link merges two trees, making the smaller-or-equal root the parent of
// the other. On equal payloads a wins, which is observable in PreOrder
// output and relied on by the deterministic shape tests. Both arguments
// are consumed: the loser is owned by the winner's child list afterward.
func link[T cmp.Ordered](a, b *tree[T]) *tree[T] {
	if a.le(b) {
		a.addChild(b)

		return a
	}
	b.addChild(a)

	return b
}
