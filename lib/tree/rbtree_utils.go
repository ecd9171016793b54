package tree

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// rbtree rule validation utilities.
// They only walk the read-only views, so they can check any tree.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

func isRedView[T any](node BinaryTreeNode[T]) bool {
	return node != nil && node.Color() == Red
}

func isBlackView[T any](node BinaryTreeNode[T]) bool {
	return node == nil || node.Color() == Black
}

func childrenOf[T any](node BinaryTreeNode[T]) (l, r BinaryTreeNode[T]) {
	if node.HasLeft() {
		l, _ = node.Left()
	}
	if node.HasRight() {
		r, _ = node.Right()
	}
	return l, r
}

// preorderViews walks the views without recursion.
func preorderViews[T any](tree BinaryTree[T], action func(node BinaryTreeNode[T]) error) error {
	root, err := tree.Root()
	if err != nil {
		return nil
	}
	stack := make([]BinaryTreeNode[T], 0, tree.Len()>>1+1)
	stack = append(stack, root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if err = action(aux); err != nil {
			return err
		}
		l, r := childrenOf(aux)
		if r != nil {
			stack = append(stack, r)
		}
		if l != nil {
			stack = append(stack, l)
		}
	}
	return nil
}

func RootColorValidate[T any](tree BinaryTree[T]) error {
	root, err := tree.Root()
	if err != nil {
		return nil
	}
	if root.Color() != Black {
		return errTreeRootViolation
	}
	return nil
}

// RedViolationValidate checks that no red node has a red child.
func RedViolationValidate[T any](tree BinaryTree[T]) error {
	return preorderViews(tree, func(node BinaryTreeNode[T]) error {
		if !isRedView(node) {
			return nil
		}
		if l, r := childrenOf(node); isRedView(l) || isRedView(r) {
			return fmt.Errorf("%w at %s", errTreeRedViolation, node)
		}
		return nil
	})
}

func blackDepth[T any](node BinaryTreeNode[T]) int {
	depth := 0
	for aux := node; aux != nil; {
		if isBlackView(aux) {
			depth++
		}
		if !aux.HasParent() {
			break
		}
		aux, _ = aux.Parent()
	}
	return depth
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
BlackViolationValidate checks every node with a NIL child.
*/
func BlackViolationValidate[T any](tree BinaryTree[T]) error {
	expected := -1
	return preorderViews(tree, func(node BinaryTreeNode[T]) error {
		if node.HasLeft() && node.HasRight() {
			return nil
		}
		depth := blackDepth(node)
		if expected < 0 {
			expected = depth
			return nil
		}
		if depth != expected {
			return fmt.Errorf("%w at %s, black depth %d, expected %d", errTreeBlackViolation, node, depth, expected)
		}
		return nil
	})
}

// LinkViolationValidate checks that every child points back to its parent.
func LinkViolationValidate[T any](tree BinaryTree[T]) error {
	if root, err := tree.Root(); err == nil && root.HasParent() {
		return errTreeLinkViolation
	}
	return preorderViews(tree, func(node BinaryTreeNode[T]) error {
		l, r := childrenOf(node)
		for _, child := range []BinaryTreeNode[T]{l, r} {
			if child == nil {
				continue
			}
			if p, err := child.Parent(); err != nil || p != node {
				return fmt.Errorf("%w at %s", errTreeLinkViolation, child)
			}
		}
		return nil
	})
}

// OrderViolationValidate checks that the in-order sequence is non-decreasing.
func OrderViolationValidate[T any](tree OrderedTree[T], cmp infra.Comparator[T]) error {
	var (
		err   error
		prev  T
		first = true
	)
	tree.InOrder(func(node BinaryTreeNode[T]) {
		if err != nil {
			return
		}
		e := node.Element()
		if !first && cmp(prev, e) > 0 {
			err = fmt.Errorf("%w, %v before %v", errTreeOrderViolation, prev, e)
		}
		prev, first = e, false
	})
	return err
}

// HeightBoundValidate checks height <= 2*log2(n+1).
func HeightBoundValidate[T any](tree BinaryTree[T]) error {
	n := tree.Len()
	if n <= 0 {
		return nil
	}
	if bound := 2 * math.Log2(float64(n+1)); float64(tree.Height()) > bound {
		return fmt.Errorf("%w, height %d, n %d", errTreeHeightViolation, tree.Height(), n)
	}
	return nil
}

// RBTreeValidate runs all the red-black rule validations.
func RBTreeValidate[T any](tree RBTree[T], cmp infra.Comparator[T]) error {
	return multierr.Combine(
		RootColorValidate[T](tree),
		RedViolationValidate[T](tree),
		BlackViolationValidate[T](tree),
		LinkViolationValidate[T](tree),
		OrderViolationValidate[T](tree, cmp),
		HeightBoundValidate[T](tree),
	)
}
