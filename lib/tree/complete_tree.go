package tree

import (
	"math/bits"
)

var (
	_ CompleteTree[int] = (*completeTree[int])(nil)
)

// completeTree is filled level by level, left to right. It has no order,
// so Contains and Find stay on the O(n) scan of the base layer.
//
// The node at the 1-based BFS position k is reached from the root by the
// bits of k below the leading one, 0 turns left and 1 turns right.
//
//	        1
//	      /   \
//	     2     3
//	    / \   /
//	   4   5 6      6 = 0b110 => right, left
type completeTree[T any] struct {
	baseTree[T]
}

func (tree *completeTree[T]) nodeAt(pos uint64) nodeIdx {
	if pos == 0 || pos > uint64(tree.count) {
		return nilIdx
	}
	aux := tree.root
	for shift := bits.Len64(pos) - 2; shift >= 0 && aux != nilIdx; shift-- {
		if (pos>>uint(shift))&1 == 0 {
			aux = tree.node(aux).left
		} else {
			aux = tree.node(aux).right
		}
	}
	return aux
}

// Insert appends the element to the first free position of the last level.
func (tree *completeTree[T]) Insert(elem T) error {
	if tree.isAbsent(elem) {
		return ErrTreeInvalidArgument
	}
	z := tree.newNode(elem)
	pos := uint64(tree.count) + 1
	if pos == 1 {
		tree.root = z
		tree.count++
		tree.touch()
		return nil
	}

	p := tree.nodeAt(pos >> 1)
	tree.node(z).parent = p
	if pos&1 == 0 {
		tree.node(p).left = z
	} else {
		tree.node(p).right = z
	}
	tree.count++
	tree.touch()
	return nil
}

// Remove moves the element of the last node into the removed one, then
// drops the last node. The tree stays complete.
func (tree *completeTree[T]) Remove(elem T) bool {
	x := tree.scan(elem)
	if x == nilIdx {
		return false
	}

	last := tree.nodeAt(uint64(tree.count))
	tree.node(x).elem = tree.node(last).elem
	if p := tree.node(last).parent; p == nilIdx {
		tree.root = nilIdx
	} else if pn := tree.node(p); pn.left == last {
		pn.left = nilIdx
	} else {
		pn.right = nilIdx
	}
	tree.arena.recycle(last)
	tree.count--
	tree.touch()
	return true
}

func (tree *completeTree[T]) bfs(action func(idx int64, node nodeIdx) bool) {
	if tree.root == nilIdx {
		return
	}
	queue := make([]nodeIdx, 0, tree.count)
	queue = append(queue, tree.root)
	for idx := int64(0); idx < int64(len(queue)); idx++ {
		aux := queue[idx]
		if !action(idx, aux) {
			return
		}
		if l := tree.node(aux).left; l != nilIdx {
			queue = append(queue, l)
		}
		if r := tree.node(aux).right; r != nilIdx {
			queue = append(queue, r)
		}
	}
}

func (tree *completeTree[T]) BFS(visitor func(node BinaryTreeNode[T])) {
	if visitor == nil {
		return
	}
	tree.bfs(func(_ int64, node nodeIdx) bool {
		visitor(tree.view(node))
		return true
	})
}

// Foreach iterates the elements in BFS order until action returns false.
func (tree *completeTree[T]) Foreach(action func(idx int64, element T) bool) {
	if action == nil {
		return
	}
	tree.bfs(func(idx int64, node nodeIdx) bool {
		return action(idx, tree.node(node).elem)
	})
}

func (tree *completeTree[T]) Iterator() Iterator[T] {
	return newBFSIterator[T](&tree.baseTree)
}

func NewCompleteTree[T comparable](opts ...TreeOption) CompleteTree[T] {
	return NewCompleteTreeFunc[T](func(i, j T) bool {
		return i == j
	}, opts...)
}

func NewCompleteTreeFunc[T any](equal func(i, j T) bool, opts ...TreeOption) CompleteTree[T] {
	if equal == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] nil equal function")
	}
	return &completeTree[T]{
		baseTree: newBaseTree[T](completeTreeKind, equal, applyTreeOptions(opts...)),
	}
}
