package pqueue

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/mstwalk/core"
)

// Sentinel errors returned by IndexedPQ.
var (
	// ErrEmptyQueue indicates ExtractMin or PeekMin on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrVertexOutOfRange indicates a vertex outside [1,capacity].
	ErrVertexOutOfRange = errors.New("pqueue: vertex out of range")

	// ErrDuplicateVertex indicates Insert of a vertex that is queued or was
	// already extracted.
	ErrDuplicateVertex = errors.New("pqueue: vertex already inserted")
)

// slotNone marks a vertex that currently has no heap slot.
const slotNone = -1

// Element is the per-vertex record kept in the arena.
type Element struct {
	// Vertex is the id this record belongs to.
	Vertex core.Vertex

	// Priority is the best known edge weight into the tree.
	Priority float64

	// Parent is the provisional tree parent for Priority.
	Parent core.Vertex

	// InQueue is true from Insert until ExtractMin removes the vertex.
	InQueue bool
}

// Handle addresses an element in the arena. It stays valid after extraction.
type Handle int

// IndexedPQ is a binary min-heap over vertices 1..capacity with a position
// index for decrease-key. The zero value is not usable; call New.
//
// IndexedPQ is not safe for concurrent use.
type IndexedPQ struct {
	arena    []Element // arena[v] is the record of vertex v; index 0 unused
	inserted []bool    // inserted[v] is set once v has ever been inserted
	h        vertexHeap
}

// New returns an empty queue accepting vertices 1..capacity.
// Complexity: O(capacity).
func New(capacity int) *IndexedPQ {
	if capacity < 0 {
		capacity = 0
	}
	q := &IndexedPQ{
		arena:    make([]Element, capacity+1),
		inserted: make([]bool, capacity+1),
	}
	q.h = vertexHeap{
		arena: q.arena,
		ids:   make([]core.Vertex, 0, capacity),
		pos:   make([]int, capacity+1),
	}
	for i := range q.h.pos {
		q.h.pos[i] = slotNone
	}

	return q
}

// Insert adds v with the given initial priority and parent.
//
// Errors: ErrVertexOutOfRange, ErrDuplicateVertex.
// Complexity: O(log n).
func (q *IndexedPQ) Insert(v core.Vertex, priority float64, parent core.Vertex) (Handle, error) {
	if !v.Valid(len(q.arena) - 1) {
		return 0, fmt.Errorf("%w: %d not in [1,%d]", ErrVertexOutOfRange, v, len(q.arena)-1)
	}
	if q.inserted[v] {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
	}
	q.inserted[v] = true
	q.arena[v] = Element{Vertex: v, Priority: priority, Parent: parent, InQueue: true}
	heap.Push(&q.h, v)

	return Handle(v), nil
}

// DecreaseKey lowers v's priority to priority and records parent, but only if
// priority is strictly smaller than the stored one. It reports whether the
// record changed. Unknown or extracted vertices are a no-op.
//
// Complexity: O(log n).
func (q *IndexedPQ) DecreaseKey(v core.Vertex, priority float64, parent core.Vertex) bool {
	if !q.Contains(v) {
		return false
	}
	el := &q.arena[v]
	if !(priority < el.Priority) {
		return false
	}
	el.Priority = priority
	el.Parent = parent
	heap.Fix(&q.h, q.h.pos[v])

	return true
}

// ExtractMin removes and returns the vertex with the smallest priority,
// preferring the smaller id on ties. The vertex's record keeps the priority and
// parent it had at extraction time; read it with Element or At.
//
// Errors: ErrEmptyQueue.
// Complexity: O(log n).
func (q *IndexedPQ) ExtractMin() (core.Vertex, error) {
	if q.h.Len() == 0 {
		return core.NoVertex, ErrEmptyQueue
	}
	v := heap.Pop(&q.h).(core.Vertex)
	q.arena[v].InQueue = false

	return v, nil
}

// PeekMin returns the priority and parent of the minimum without removing it.
//
// Errors: ErrEmptyQueue.
// Complexity: O(1).
func (q *IndexedPQ) PeekMin() (float64, core.Vertex, error) {
	if q.h.Len() == 0 {
		return 0, core.NoVertex, ErrEmptyQueue
	}
	el := q.arena[q.h.ids[0]]

	return el.Priority, el.Parent, nil
}

// IsEmpty reports whether no vertex is queued.
func (q *IndexedPQ) IsEmpty() bool { return q.h.Len() == 0 }

// Len returns the number of queued vertices.
func (q *IndexedPQ) Len() int { return q.h.Len() }

// Contains reports whether v is currently queued.
// Complexity: O(1).
func (q *IndexedPQ) Contains(v core.Vertex) bool {
	return v.Valid(len(q.arena)-1) && q.arena[v].InQueue
}

// Element returns a copy of v's record. ok is false if v was never inserted.
// Complexity: O(1).
func (q *IndexedPQ) Element(v core.Vertex) (Element, bool) {
	if !v.Valid(len(q.arena)-1) || !q.inserted[v] {
		return Element{}, false
	}

	return q.arena[v], true
}

// At returns a copy of the record addressed by h.
func (q *IndexedPQ) At(h Handle) Element {
	el, _ := q.Element(core.Vertex(h))

	return el
}

// vertexHeap implements heap.Interface over vertex ids. The priorities live in
// the shared arena; pos tracks each id's slot so heap.Fix can be targeted.
type vertexHeap struct {
	arena []Element
	ids   []core.Vertex
	pos   []int
}

// Len returns the number of ids in the heap.
func (h vertexHeap) Len() int { return len(h.ids) }

// Less orders by priority, then by vertex id.
func (h vertexHeap) Less(i, j int) bool {
	a, b := h.arena[h.ids[i]], h.arena[h.ids[j]]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.Vertex < b.Vertex
}

// Swap exchanges two slots and keeps pos in sync.
func (h vertexHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

// Push appends an id; called by heap.Push.
func (h *vertexHeap) Push(x interface{}) {
	v := x.(core.Vertex)
	h.pos[v] = len(h.ids)
	h.ids = append(h.ids, v)
}

// Pop removes the last id; called by heap.Pop after moving the minimum there.
func (h *vertexHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	v := old[n-1]
	h.ids = old[:n-1]
	h.pos[v] = slotNone

	return v
}
