package tree

import (
	"math"
)

// nodeIdx addresses a node inside the arena. The parent index is only a
// back-reference, the left and right indices own their subtrees.
type nodeIdx uint32

// Non-zero offset, index 0 is the absent node.
const nilIdx nodeIdx = 0

type node[T any] struct {
	elem   T
	parent nodeIdx
	left   nodeIdx
	right  nodeIdx
	color  RBColor
	// sentinel marks the transient BLACK placeholder attached while a leaf
	// is removed. It never survives the removal.
	sentinel bool
	live     bool
}

// nodeArena stores the nodes of one tree. Removed slots are recycled.
// Never keep a *node across allocate, the slice may grow.
type nodeArena[T any] struct {
	nodes    []node[T]
	recycled []nodeIdx
}

func newNodeArena[T any](initCap int) *nodeArena[T] {
	if initCap < 0 {
		initCap = 0
	}
	nodes := make([]node[T], 1, initCap+1)
	return &nodeArena[T]{
		nodes:    nodes,
		recycled: make([]nodeIdx, 0, 8),
	}
}

func (arena *nodeArena[T]) allocate(elem T, color RBColor) nodeIdx {
	var idx nodeIdx
	if l := len(arena.recycled); l > 0 {
		idx = arena.recycled[l-1]
		arena.recycled = arena.recycled[:l-1]
	} else {
		if uint64(len(arena.nodes)) >= math.MaxUint32 {
			panic( /* debug assertion */ "[tree] node arena is full")
		}
		arena.nodes = append(arena.nodes, node[T]{})
		idx = nodeIdx(len(arena.nodes) - 1)
	}
	arena.nodes[idx] = node[T]{
		elem:  elem,
		color: color,
		live:  true,
	}
	return idx
}

func (arena *nodeArena[T]) get(idx nodeIdx) *node[T] {
	if idx == nilIdx {
		// impossible run to here
		panic( /* debug assertion */ "[tree] access the absent node")
	}
	return &arena.nodes[idx]
}

func (arena *nodeArena[T]) isLive(idx nodeIdx) bool {
	return idx != nilIdx && int(idx) < len(arena.nodes) && arena.nodes[idx].live
}

// recycle drops the element reference and keeps the slot for reuse.
func (arena *nodeArena[T]) recycle(idx nodeIdx) {
	if !arena.isLive(idx) {
		return
	}
	arena.nodes[idx] = node[T]{}
	arena.recycled = append(arena.recycled, idx)
}

// liveLen is the number of allocated and not recycled nodes.
func (arena *nodeArena[T]) liveLen() int {
	return len(arena.nodes) - 1 - len(arena.recycled)
}

func (arena *nodeArena[T]) reset() {
	clear(arena.nodes)
	arena.nodes = arena.nodes[:1]
	arena.recycled = arena.recycled[:0]
}
