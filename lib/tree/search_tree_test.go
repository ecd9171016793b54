package tree

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

func inorderElements[T any](tree OrderedTree[T]) []T {
	res := make([]T, 0, tree.Len())
	tree.InOrder(func(node BinaryTreeNode[T]) {
		res = append(res, node.Element())
	})
	return res
}

func foreachElements[T any](tree BinaryTree[T]) []T {
	res := make([]T, 0, tree.Len())
	tree.Foreach(func(idx int64, element T) bool {
		res = append(res, element)
		return true
	})
	return res
}

func iterElements[T any](t *testing.T, tree BinaryTree[T]) []T {
	res := make([]T, 0, tree.Len())
	for it := tree.Iterator(); it.HasNext(); {
		e, err := it.Next()
		require.NoError(t, err)
		res = append(res, e)
	}
	return res
}

func newSearchTreeOf(elems ...int) BinarySearchTree[int] {
	tree := NewBinarySearchTree[int]()
	for _, e := range elems {
		_ = tree.Insert(e)
	}
	return tree
}

func TestBinarySearchTree_InsertAndTraversal(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, int64(7), tree.Len())
	require.False(t, tree.IsEmpty())
	require.Equal(t, 2, tree.Height())

	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, inorderElements[int](tree))
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, foreachElements[int](tree))
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, iterElements[int](t, tree))

	pre := make([]int, 0, 7)
	tree.PreOrder(func(node BinaryTreeNode[int]) {
		pre = append(pre, node.Element())
	})
	require.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, pre)

	post := make([]int, 0, 7)
	tree.PostOrder(func(node BinaryTreeNode[int]) {
		post = append(post, node.Element())
	})
	require.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, post)

	first, err := tree.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)
	last, err := tree.Last()
	require.NoError(t, err)
	require.Equal(t, 9, last)

	root, err := tree.Root()
	require.NoError(t, err)
	require.Equal(t, 5, root.Element())
	require.Equal(t, NoColor, root.Color())
	require.False(t, root.HasParent())
	require.Equal(t, 2, root.Height())
	require.Equal(t, 0, root.Depth())
	require.Equal(t, "5", root.String())

	_, err = root.Parent()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	l, err := root.Left()
	require.NoError(t, err)
	require.Equal(t, 3, l.Element())
	require.Equal(t, 1, l.Depth())
	p, err := l.Parent()
	require.NoError(t, err)
	require.Equal(t, root, p)
}

func TestBinarySearchTree_Foreach_Stop(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8, 1, 4)
	visited := make([]int, 0, 2)
	tree.Foreach(func(idx int64, element int) bool {
		visited = append(visited, element)
		return idx < 1
	})
	require.Equal(t, []int{1, 3}, visited)
	tree.Foreach(nil)
	tree.InOrder(nil)
	tree.PreOrder(nil)
	tree.PostOrder(nil)
}

func TestBinarySearchTree_Empty(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())
	require.Equal(t, -1, tree.Height())
	require.Equal(t, "", tree.String())

	_, err := tree.Root()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	_, err = tree.First()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	_, err = tree.Last()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	_, err = tree.LastInserted()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	_, err = tree.Find(1)
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
	require.False(t, tree.Contains(1))
	require.False(t, tree.Remove(1))

	it := tree.Iterator()
	require.False(t, it.HasNext())
	_, err = it.Next()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
}

func TestBinarySearchTree_RemoveTwoChildren(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8, 1, 4)
	require.True(t, tree.Remove(5))
	require.Equal(t, []int{1, 3, 4, 8}, inorderElements[int](tree))

	root, err := tree.Root()
	require.NoError(t, err)
	require.Equal(t, 4, root.Element(), "predecessor takes the position")
	require.Equal(t, int64(4), tree.Len())
	require.False(t, tree.Contains(5))
	require.False(t, tree.Remove(5))
}

func TestBinarySearchTree_RemoveBorrowSucc(t *testing.T) {
	tree := NewBinarySearchTree[int](WithTreeRemoveBorrowSucc())
	for _, e := range []int{5, 3, 8, 1, 4, 7} {
		require.NoError(t, tree.Insert(e))
	}
	require.True(t, tree.Remove(5))
	root, err := tree.Root()
	require.NoError(t, err)
	require.Equal(t, 7, root.Element())
	require.Equal(t, []int{1, 3, 4, 7, 8}, inorderElements[int](tree))
}

func TestBinarySearchTree_RemoveLeafAndOneChild(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8, 1)
	require.True(t, tree.Remove(1))
	require.Equal(t, []int{3, 5, 8}, inorderElements[int](tree))
	require.True(t, tree.Remove(5))
	require.Equal(t, []int{3, 8}, inorderElements[int](tree))
	require.True(t, tree.Remove(3))
	require.True(t, tree.Remove(8))
	require.True(t, tree.IsEmpty())
	require.NoError(t, LinkViolationValidate[int](tree))
}

func TestBinarySearchTree_Duplicates(t *testing.T) {
	tree := newSearchTreeOf(2, 2, 1, 2, 3)
	require.Equal(t, int64(5), tree.Len())
	require.Equal(t, []int{1, 2, 2, 2, 3}, inorderElements[int](tree))

	require.True(t, tree.Remove(2))
	require.Equal(t, []int{1, 2, 2, 3}, inorderElements[int](tree))
	require.True(t, tree.Remove(2))
	require.True(t, tree.Remove(2))
	require.False(t, tree.Remove(2))
	require.Equal(t, []int{1, 3}, inorderElements[int](tree))
}

func TestBinarySearchTree_LastInserted(t *testing.T) {
	tree := newSearchTreeOf(5, 3)
	node, err := tree.LastInserted()
	require.NoError(t, err)
	require.Equal(t, 3, node.Element())
	p, err := node.Parent()
	require.NoError(t, err)
	require.Equal(t, 5, p.Element())

	require.True(t, tree.Remove(5))
	_, err = tree.LastInserted()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)

	require.NoError(t, tree.Insert(9))
	node, err = tree.LastInserted()
	require.NoError(t, err)
	require.Equal(t, 9, node.Element())

	tree.Clear()
	_, err = tree.LastInserted()
	require.ErrorIs(t, err, ErrTreeNoSuchElement)
}

func TestBinarySearchTree_Rotation(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8, 1, 4)
	origin := newSearchTreeOf(5, 3, 8, 1, 4)
	require.True(t, tree.Equal(origin))

	root, err := tree.Root()
	require.NoError(t, err)
	require.NoError(t, tree.RotateRight(root))

	newRoot, err := tree.Root()
	require.NoError(t, err)
	require.Equal(t, 3, newRoot.Element())
	require.Equal(t, []int{1, 3, 4, 5, 8}, inorderElements[int](tree))
	require.NoError(t, LinkViolationValidate[int](tree))
	require.False(t, tree.Equal(origin))

	require.NoError(t, tree.RotateLeft(newRoot))
	require.True(t, tree.Equal(origin), "rotations are invertible")

	// No-op without the needed child.
	leaf, err := tree.Find(1)
	require.NoError(t, err)
	require.NoError(t, tree.RotateLeft(leaf))
	require.NoError(t, tree.RotateRight(leaf))
	require.True(t, tree.Equal(origin))

	rotator, err := AsRotator[int](tree)
	require.NoError(t, err)
	require.NotNil(t, rotator)
}

func TestBinarySearchTree_RotateForeignNode(t *testing.T) {
	tree := newSearchTreeOf(5, 3)
	other := newSearchTreeOf(5, 3)
	foreign, err := other.Root()
	require.NoError(t, err)
	require.ErrorIs(t, tree.RotateRight(foreign), ErrTreeForeignNode)

	node, err := tree.Find(3)
	require.NoError(t, err)
	require.True(t, tree.Remove(3))
	require.ErrorIs(t, tree.RotateLeft(node), ErrTreeNoSuchElement)
}

func TestBinarySearchTree_Desc(t *testing.T) {
	tree := NewBinarySearchTree[int](WithTreeDesc())
	for _, e := range []int{5, 3, 8, 1, 4} {
		require.NoError(t, tree.Insert(e))
	}
	require.Equal(t, []int{8, 5, 4, 3, 1}, inorderElements[int](tree))
	first, _ := tree.First()
	require.Equal(t, 8, first)
	require.True(t, tree.Contains(4))
	require.True(t, tree.Remove(5))
	require.Equal(t, []int{8, 4, 3, 1}, foreachElements[int](tree))
}

func TestBinarySearchTree_NilPointer(t *testing.T) {
	type item struct{ key int }
	tree := NewBinarySearchTreeFunc[*item](func(i, j *item) int64 {
		return int64(i.key - j.key)
	})
	require.ErrorIs(t, tree.Insert(nil), ErrTreeInvalidArgument)
	require.NoError(t, tree.Insert(&item{key: 1}))
	require.False(t, tree.Contains(nil))
	require.False(t, tree.Remove(nil))
	require.Equal(t, int64(1), tree.Len())
}

func TestBinarySearchTree_IteratorInvalidated(t *testing.T) {
	tree := newSearchTreeOf(5, 3, 8)
	it := tree.Iterator()
	e, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, e)

	require.NoError(t, tree.Insert(1))
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrTreeIteratorInvalidated))

	it = tree.Iterator()
	root, _ := tree.Root()
	require.NoError(t, tree.RotateLeft(root))
	_, err = it.Next()
	require.ErrorIs(t, err, ErrTreeIteratorInvalidated)
}

func TestBinarySearchTree_Random(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	elems := lo.Shuffle(lo.Range(500))
	for _, e := range elems {
		require.NoError(t, tree.Insert(e))
	}
	require.Equal(t, lo.Range(500), inorderElements[int](tree))
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedKeyCompare[int]))
	require.NoError(t, LinkViolationValidate[int](tree))

	removed := lo.Samples(elems, 200)
	for _, e := range removed {
		require.True(t, tree.Remove(e))
		require.NoError(t, LinkViolationValidate[int](tree))
	}
	expected, _ := lo.Difference(lo.Range(500), removed)
	sort.Ints(expected)
	require.Equal(t, expected, inorderElements[int](tree))
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedKeyCompare[int]))

	for i := 0; i < 100; i++ {
		root, err := tree.Root()
		require.NoError(t, err)
		if rand.Intn(2) == 0 {
			require.NoError(t, tree.RotateLeft(root))
		} else {
			require.NoError(t, tree.RotateRight(root))
		}
	}
	require.Equal(t, expected, inorderElements[int](tree))
	require.NoError(t, LinkViolationValidate[int](tree))
}
