package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

var (
	_ BinarySearchTree[int] = (*binarySearchTree[int])(nil)
)

// binarySearchTree has no balancing policy, so the rotations are open to
// the callers.
type binarySearchTree[T any] struct {
	bst[T]
}

func (tree *binarySearchTree[T]) Insert(elem T) error {
	if tree.isAbsent(elem) {
		return ErrTreeInvalidArgument
	}
	tree.insertNode(elem)
	return nil
}

// Remove borrows the predecessor (or the successor) for a node with two
// children, then unlinks the borrowed node.
func (tree *binarySearchTree[T]) Remove(elem T) bool {
	x := tree.search(elem)
	if x == nilIdx {
		return false
	}
	y := tree.swapForRemoval(x)
	tree.splice(y)
	tree.arena.recycle(y)
	tree.count--
	tree.lastInserted = nilIdx
	tree.touch()
	return true
}

// RotateLeft is a no-op if the node has no right child.
func (tree *binarySearchTree[T]) RotateLeft(node BinaryTreeNode[T]) error {
	x, err := tree.owned(node)
	if err != nil {
		return err
	}
	tree.leftRotate(x)
	return nil
}

// RotateRight is a no-op if the node has no left child.
func (tree *binarySearchTree[T]) RotateRight(node BinaryTreeNode[T]) error {
	x, err := tree.owned(node)
	if err != nil {
		return err
	}
	tree.rightRotate(x)
	return nil
}

func NewBinarySearchTree[K infra.OrderedKey](opts ...TreeOption) BinarySearchTree[K] {
	return NewBinarySearchTreeFunc[K](infra.OrderedKeyCompare[K], opts...)
}

func NewBinarySearchTreeFunc[T any](cmp infra.Comparator[T], opts ...TreeOption) BinarySearchTree[T] {
	return &binarySearchTree[T]{
		bst: newBST[T](searchTreeKind, cmp, applyTreeOptions(opts...)),
	}
}
