package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// bst is the ordering layer shared by the binary search tree and the
// red-black tree. It keeps the invariant
//
//	left subtree <= node <= right subtree
//
// Equal elements are placed to the left, so duplicates are retained.
// It only exports the read side, the mutation primitives are left to the
// concrete trees.
type bst[T any] struct {
	baseTree[T]
	cmp            infra.Comparator[T]
	lastInserted   nodeIdx
	isRmBorrowSucc bool
}

func newBST[T any](kind treeKind, cmp infra.Comparator[T], opts *treeOptions) bst[T] {
	if cmp == nil {
		// impossible run to here
		panic( /* debug assertion */ "[bst] nil comparator")
	}
	if opts.isDesc {
		cmp = infra.ReverseComparator(cmp)
	}
	return bst[T]{
		baseTree: newBaseTree[T](kind, func(i, j T) bool {
			return cmp(i, j) == 0
		}, opts),
		cmp:            cmp,
		isRmBorrowSucc: opts.isRmBorrowSucc,
	}
}

// insertNode places the element, links its parent and records it as the
// last inserted node.
func (tree *bst[T]) insertNode(elem T) nodeIdx {
	z := tree.newNode(elem)
	tree.count++
	tree.touch()
	tree.lastInserted = z
	if tree.root == nilIdx {
		tree.root = z
		return z
	}

	var x, y nodeIdx = tree.root, nilIdx
	for x != nilIdx {
		y = x
		if /* less or equal */ tree.cmp(elem, tree.node(x).elem) <= 0 {
			x = tree.node(x).left
		} else /* greater */ {
			x = tree.node(x).right
		}
	}

	tree.node(z).parent = y
	if tree.cmp(elem, tree.node(y).elem) <= 0 {
		tree.node(y).left = z
	} else {
		tree.node(y).right = z
	}
	return z
}

// search descends by the order, O(log n) for the balanced trees.
func (tree *bst[T]) search(elem T) nodeIdx {
	if tree.isAbsent(elem) {
		return nilIdx
	}
	for aux := tree.root; aux != nilIdx; {
		res := tree.cmp(elem, tree.node(aux).elem)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = tree.node(aux).right
		} else {
			aux = tree.node(aux).left
		}
	}
	return nilIdx
}

func (tree *bst[T]) Contains(elem T) bool {
	return tree.search(elem) != nilIdx
}

func (tree *bst[T]) Find(elem T) (BinaryTreeNode[T], error) {
	idx := tree.search(elem)
	if idx == nilIdx {
		return nil, ErrTreeNoSuchElement
	}
	return tree.view(idx), nil
}

func (tree *bst[T]) minimum(idx nodeIdx) nodeIdx {
	aux := idx
	for ; aux != nilIdx && tree.node(aux).left != nilIdx; aux = tree.node(aux).left {
	}
	return aux
}

func (tree *bst[T]) maximum(idx nodeIdx) nodeIdx {
	aux := idx
	for ; aux != nilIdx && tree.node(aux).right != nilIdx; aux = tree.node(aux).right {
	}
	return aux
}

func (tree *bst[T]) First() (T, error) {
	if tree.root == nilIdx {
		return *new(T), ErrTreeNoSuchElement
	}
	return tree.node(tree.minimum(tree.root)).elem, nil
}

func (tree *bst[T]) Last() (T, error) {
	if tree.root == nilIdx {
		return *new(T), ErrTreeNoSuchElement
	}
	return tree.node(tree.maximum(tree.root)).elem, nil
}

func (tree *bst[T]) LastInserted() (BinaryTreeNode[T], error) {
	if !tree.arena.isLive(tree.lastInserted) {
		return nil, ErrTreeNoSuchElement
	}
	return tree.view(tree.lastInserted), nil
}

/*
swapForRemoval prepares a node with two children to be removed.
Only the elements are swapped, the returned node has one child at most.

Borrow pred (default):

	  |                    |
	  X                    L
	 / \                  / \
	L  ..   swap(X, L)   X  ..

Borrow succ:

	  |                    |
	  X                    S
	 / \                  / \
	.. S    swap(X, S)   .. X
*/
func (tree *bst[T]) swapForRemoval(x nodeIdx) nodeIdx {
	xn := tree.node(x)
	if xn.left == nilIdx || xn.right == nilIdx {
		return x
	}
	var y nodeIdx
	if tree.isRmBorrowSucc {
		y = tree.minimum(xn.right)
	} else {
		y = tree.maximum(xn.left)
	}
	yn := tree.node(y)
	xn.elem, yn.elem = yn.elem, xn.elem
	return y
}

// splice unlinks a node with one child at most. The child takes its place
// and keeps the parent link.
func (tree *bst[T]) splice(x nodeIdx) {
	xn := tree.node(x)
	if xn.left != nilIdx && xn.right != nilIdx {
		// impossible run to here
		panic( /* debug assertion */ "[bst] splice a node with two children")
	}
	child := xn.left
	if child == nilIdx {
		child = xn.right
	}
	p := xn.parent
	tree.relink(p, x, child)
	if child != nilIdx {
		tree.node(child).parent = p
	}
	xn.parent, xn.left, xn.right = nilIdx, nilIdx, nilIdx
}

// relink replaces the child x of p by y, p absent means x is the root.
func (tree *bst[T]) relink(p, x, y nodeIdx) {
	if p == nilIdx {
		tree.root = y
		return
	}
	if pn := tree.node(p); pn.left == x {
		pn.left = y
	} else {
		pn.right = y
	}
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc

No-op if X has no right child.
*/
func (tree *bst[T]) leftRotate(x nodeIdx) {
	xn := tree.node(x)
	y := xn.right
	if y == nilIdx {
		return
	}
	yn := tree.node(y)
	p := xn.parent

	xn.right, yn.left = yn.left, x
	if xn.right != nilIdx {
		tree.node(xn.right).parent = x
	}
	xn.parent = y
	yn.parent = p
	tree.relink(p, x, y)
	tree.touch()
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd

No-op if S has no left child.
*/
func (tree *bst[T]) rightRotate(x nodeIdx) {
	xn := tree.node(x)
	y := xn.left
	if y == nilIdx {
		return
	}
	yn := tree.node(y)
	p := xn.parent

	xn.left, yn.right = yn.right, x
	if xn.left != nilIdx {
		tree.node(xn.left).parent = x
	}
	xn.parent = y
	yn.parent = p
	tree.relink(p, x, y)
	tree.touch()
}

func (tree *bst[T]) PreOrder(visitor func(node BinaryTreeNode[T])) {
	if tree.root == nilIdx || visitor == nil {
		return
	}
	stack := make([]nodeIdx, 0, tree.count>>1+1)
	stack = append(stack, tree.root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		visitor(tree.view(aux))
		if r := tree.node(aux).right; r != nilIdx {
			stack = append(stack, r)
		}
		if l := tree.node(aux).left; l != nilIdx {
			stack = append(stack, l)
		}
	}
}

// InOrder traversal by the explicit stack of the left spines.
func (tree *bst[T]) InOrder(visitor func(node BinaryTreeNode[T])) {
	if visitor == nil {
		return
	}
	tree.inorder(func(_ int64, idx nodeIdx) bool {
		visitor(tree.view(idx))
		return true
	})
}

func (tree *bst[T]) PostOrder(visitor func(node BinaryTreeNode[T])) {
	if tree.root == nilIdx || visitor == nil {
		return
	}
	var (
		stack = make([]nodeIdx, 0, tree.count>>1+1)
		last  = nilIdx
		aux   = tree.root
	)
	for aux != nilIdx || len(stack) > 0 {
		if aux != nilIdx {
			stack = append(stack, aux)
			aux = tree.node(aux).left
			continue
		}
		top := stack[len(stack)-1]
		if r := tree.node(top).right; r != nilIdx && r != last {
			aux = r
			continue
		}
		visitor(tree.view(top))
		last = top
		stack = stack[:len(stack)-1]
	}
}

func (tree *bst[T]) inorder(action func(idx int64, node nodeIdx) bool) {
	aux := tree.root
	if aux == nilIdx {
		return
	}

	stack := make([]nodeIdx, 0, tree.count>>1+1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nilIdx; aux = tree.node(aux).left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = tree.node(aux).right; aux != nilIdx; aux = tree.node(aux).left {
			stack = append(stack, aux)
		}
	}
}

// Foreach iterates the elements in ascending order until action returns false.
func (tree *bst[T]) Foreach(action func(idx int64, element T) bool) {
	if action == nil {
		return
	}
	tree.inorder(func(idx int64, node nodeIdx) bool {
		return action(idx, tree.node(node).elem)
	})
}

func (tree *bst[T]) Iterator() Iterator[T] {
	return newInOrderIterator[T](&tree.baseTree)
}

func (tree *bst[T]) Clear() {
	tree.baseTree.Clear()
	tree.lastInserted = nilIdx
}
