// Package pqueue provides IndexedPQ, a min-priority queue over dense vertex
// ids with O(log n) insert, decrease-key and extract-min, and O(1) membership
// and priority lookup.
//
// What & Why
//
//   - Prim's algorithm needs to lower the tentative connection cost of a vertex
//     already in the queue. container/heap alone only offers "lazy" decrease-key
//     (push a duplicate, skip stale entries on pop), which grows the heap to
//     O(E). IndexedPQ keeps exactly one entry per vertex and repairs the heap in
//     place with heap.Fix.
//
// Layout
//
//   - arena: one Element record per vertex, indexed by vertex id. Records are
//     never aliased; callers receive copies.
//   - heap:  slice of vertex ids ordered as a binary min-heap.
//   - pos:   vertex id → heap slot, or -1 once the vertex is extracted or was
//     never inserted.
//
// Ordering
//
//	Elements are ordered by Priority ascending; equal priorities are broken by
//	the smaller vertex id, so extraction order is deterministic.
//
// Contract
//
//   - DecreaseKey only ever lowers a priority. A candidate that is not strictly
//     smaller, or a vertex that is no longer queued, is a silent no-op.
//   - Once extracted a vertex stays out: Insert of the same id is rejected.
//
// Complexity:
//
//	Insert, DecreaseKey, ExtractMin: O(log n)
//	PeekMin, Contains, Element, Len:  O(1)
//	Memory: O(capacity)
package pqueue
