package tree

import (
	"errors"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
	NoColor // Nodes of the trees without balancing policy.
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	case NoColor:
		return "NoColor"
	default:
	}
	return "RBColor(unknown)"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrTreeInvalidArgument      = errors.New("[tree] invalid argument")
	ErrTreeNoSuchElement        = errors.New("[tree] no such element")
	ErrTreeUnsupportedOperation = errors.New("[tree] unsupported operation")
	ErrTreeForeignNode          = errors.New("[tree] node does not belong to this tree")
	ErrTreeIteratorInvalidated  = errors.New("[tree] tree modified during iteration")
	errTreeRedViolation         = errors.New("[rbtree] red violation")
	errTreeBlackViolation       = errors.New("[rbtree] black violation")
	errTreeRootViolation        = errors.New("[rbtree] root is not black")
	errTreeHeightViolation      = errors.New("[rbtree] height exceeds 2*log2(n+1)")
	errTreeOrderViolation       = errors.New("[bst] order violation")
	errTreeLinkViolation        = errors.New("[tree] parent link violation")
)

// BinaryTreeNode is the read-only view of a node.
// A view stays valid until the node is removed from its tree or the tree
// is cleared.
type BinaryTreeNode[T any] interface {
	Element() T
	Color() RBColor
	HasParent() bool
	HasLeft() bool
	HasRight() bool
	// Parent, Left and Right return ErrTreeNoSuchElement if the link is absent.
	Parent() (BinaryTreeNode[T], error)
	Left() (BinaryTreeNode[T], error)
	Right() (BinaryTreeNode[T], error)
	// Height of the subtree rooted at this node, a leaf is 0.
	Height() int
	// Depth is the number of links to the root, the root is 0.
	Depth() int
	String() string
}

// Iterator is a lazy and finite sequence of elements.
// Create a fresh iterator to restart.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

type BinaryTree[T any] interface {
	Len() int64
	IsEmpty() bool
	// Height of the whole tree, -1 if the tree is empty.
	Height() int
	Root() (BinaryTreeNode[T], error)
	// Insert returns ErrTreeInvalidArgument if the element is a nil value.
	Insert(element T) error
	// Remove removes exactly one matching element. It reports whether
	// anything was removed, an absent element is a no-op.
	Remove(element T) bool
	Contains(element T) bool
	Find(element T) (BinaryTreeNode[T], error)
	Clear()
	// Equal compares the shape, the elements and the colors.
	Equal(other BinaryTree[T]) bool
	Foreach(action func(idx int64, element T) bool)
	Iterator() Iterator[T]
	String() string
}

type OrderedTree[T any] interface {
	BinaryTree[T]
	First() (T, error)
	Last() (T, error)
	// LastInserted is only meaningful right after an Insert.
	LastInserted() (BinaryTreeNode[T], error)
	PreOrder(visitor func(node BinaryTreeNode[T]))
	InOrder(visitor func(node BinaryTreeNode[T]))
	PostOrder(visitor func(node BinaryTreeNode[T]))
}

// Rotator is only implemented by trees without balancing policy.
type Rotator[T any] interface {
	RotateLeft(node BinaryTreeNode[T]) error
	RotateRight(node BinaryTreeNode[T]) error
}

type BinarySearchTree[T any] interface {
	OrderedTree[T]
	Rotator[T]
}

// RBTree keeps the rotations to itself.
type RBTree[T any] interface {
	OrderedTree[T]
	BlackHeight() int
}

type CompleteTree[T any] interface {
	BinaryTree[T]
	BFS(visitor func(node BinaryTreeNode[T]))
}

// AsRotator returns the tree's Rotator or ErrTreeUnsupportedOperation if
// the tree doesn't allow external rotations.
func AsRotator[T any](tree BinaryTree[T]) (Rotator[T], error) {
	if r, ok := tree.(Rotator[T]); ok {
		return r, nil
	}
	return nil, ErrTreeUnsupportedOperation
}
