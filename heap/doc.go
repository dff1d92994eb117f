// Package heap provides a mergeable minimum-priority queue — a Fibonacci
// heap — generic over any ordered payload type.
//
// Overview:
//
//   - A Fibonacci heap is a collection of heap-ordered multi-way trees: an
//     unordered root list plus a distinguished pointer to the tree whose
//     root holds the current minimum.
//   - Push and Merge only touch the root list and the min pointer, so both
//     run in O(1). The structural work is deferred to Pop, whose
//     consolidation pass merges equal-degree roots pairwise until all root
//     degrees are distinct, giving O(log n) amortized extraction.
//   - The heap is a building block for graph and scheduling algorithms
//     (Dijkstra, Prim, event-driven simulation) that need repeated
//     "insert now, extract smallest later" with cheap merging of
//     independently built queues.
//
// When to use:
//
//   - Workloads dominated by insertions and melds, with comparatively few
//     extractions.
//   - Any place a plain binary heap works but queues must be unioned
//     without rebuilding.
//
// Performance and complexity:
//
//   - Push:  O(1) worst case.
//   - Merge: O(1) amortized (root-list concatenation plus one comparison).
//   - Pop:   O(log n) amortized; a single Pop can cost O(r) for r current
//     roots, repaid by the pushes that created them.
//   - Peek, Size, IsEmpty: O(1).
//   - Space: O(n); every node is exclusively owned by its parent tree or by
//     the heap itself, with no parent or sibling back-references.
//
// Determinism:
//
//	Tree shapes and root-list order are fully determined by the insertion
//	order, the tie-break rule (on equal payloads the first operand of a
//	link becomes the parent), and consolidation's front-to-back drain and
//	ascending-degree sweep. PreOrder exposes the exact shapes for tests
//	and debugging.
//
// Not provided (deliberately):
//
//   - decrease-key and arbitrary-node deletion — nodes are not handed out,
//     so there is nothing to address them by;
//   - thread-safety — callers needing concurrent access to one heap must
//     serialize externally;
//   - persistence — PreOrder is a human-readable debug dump, not a wire
//     format.
//
// Error handling:
//
//	The API has no error returns. Pop and Peek report "no value" on an
//	empty heap via their boolean result. Misuse that would corrupt a
//	pointer-based Fibonacci heap (comparing an already-extracted node,
//	taking a payload twice) is unrepresentable here: extraction consumes
//	the node outright, so no emptied node ever remains reachable.
//
// Example usage:
//
//	h := heap.NewFibonacciHeap[int]()
//	h.Push(3)
//	h.Push(1)
//	if v, ok := h.Pop(); ok {
//	    fmt.Println(v) // 1
//	}
package heap
