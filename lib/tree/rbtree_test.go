package tree

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/xlog"
)

type checkData struct {
	color RBColor
	key   uint64
}

func requireRBTreeInOrder(t *testing.T, tree RBTree[uint64], expected []checkData) {
	t.Helper()
	require.Equal(t, int64(len(expected)), tree.Len())
	idx := 0
	tree.InOrder(func(node BinaryTreeNode[uint64]) {
		require.Equal(t, expected[idx].color, node.Color())
		require.Equal(t, expected[idx].key, node.Element())
		idx++
	})
	require.Equal(t, len(expected), idx)
	require.NoError(t, RBTreeValidate[uint64](tree, infra.OrderedKeyCompare[uint64]))
}

func TestRbtreeLeftAndRightRotate_Pred(t *testing.T) {
	tree := NewRBTree[uint64]()

	require.NoError(t, tree.Insert(52))
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 52},
	})

	require.NoError(t, tree.Insert(47))
	requireRBTreeInOrder(t, tree, []checkData{
		{Red, 47}, {Black, 52},
	})

	require.NoError(t, tree.Insert(3))
	requireRBTreeInOrder(t, tree, []checkData{
		{Red, 3}, {Black, 47}, {Red, 52},
	})

	require.NoError(t, tree.Insert(35))
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 3},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	require.NoError(t, tree.Insert(24))
	requireRBTreeInOrder(t, tree, []checkData{
		{Red, 3},
		{Black, 24},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	// remove

	require.True(t, tree.Remove(24))
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 3},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	require.True(t, tree.Remove(47))
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 3},
		{Black, 35},
		{Black, 52},
	})

	require.True(t, tree.Remove(52))
	requireRBTreeInOrder(t, tree, []checkData{
		{Red, 3}, {Black, 35},
	})

	require.True(t, tree.Remove(3))
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 35},
	})

	require.True(t, tree.Remove(35))
	require.Equal(t, int64(0), tree.Len())
	require.True(t, tree.IsEmpty())
}

func TestRbtree_RemoveMin(t *testing.T) {
	tree := NewRBTree[uint64]()
	for _, e := range []uint64{52, 47, 3, 35, 24} {
		require.NoError(t, tree.Insert(e))
	}
	requireRBTreeInOrder(t, tree, []checkData{
		{Red, 3},
		{Black, 24},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	removeMin := func() uint64 {
		first, err := tree.First()
		require.NoError(t, err)
		require.True(t, tree.Remove(first))
		return first
	}

	require.Equal(t, uint64(3), removeMin())
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 24},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	})

	require.Equal(t, uint64(24), removeMin())
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 35},
		{Black, 47},
		{Black, 52},
	})

	require.Equal(t, uint64(35), removeMin())
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 47}, {Red, 52},
	})

	require.Equal(t, uint64(47), removeMin())
	requireRBTreeInOrder(t, tree, []checkData{
		{Black, 52},
	})

	require.Equal(t, uint64(52), removeMin())
	require.Equal(t, int64(0), tree.Len())
}

func TestRbtree_BalancedInsertOrder(t *testing.T) {
	tree := NewRBTree[int]()
	for _, e := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tree.Insert(e))
	}
	require.Equal(t, `B{4}
├─›B{2}
│  ├─›R{1}
│  └─»R{3}
└─»B{6}
   ├─›R{5}
   └─»R{7}
`, tree.String())
	require.Equal(t, 2, tree.Height())
	require.Equal(t, 1, tree.BlackHeight())
	require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
}

func TestRbtree_AscendingInsertOrder(t *testing.T) {
	tree := NewRBTree[int]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, tree.Insert(i))
		require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
	}
	// The recoloring at 6 stops below the root, so 2 stays the root.
	require.Equal(t, `B{2}
├─›B{1}
└─»R{4}
   ├─›B{3}
   └─»B{6}
      ├─›R{5}
      └─»R{7}
`, tree.String())
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 1, tree.BlackHeight())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inorderElements[int](tree))
}

func TestRbtree_RemoveSingle(t *testing.T) {
	tree := NewRBTree[int]()
	require.NoError(t, tree.Insert(1))
	require.True(t, tree.Remove(1))
	require.Equal(t, int64(0), tree.Len())
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.BlackHeight())
	require.Equal(t, 0, tree.(*rbTree[int]).arena.liveLen(), "the sentinel is released")
	require.False(t, tree.Remove(1))
}

func TestRbtree_RemoveRoot(t *testing.T) {
	tree := NewRBTree[int]()
	for _, e := range []int{10, 20, 30} {
		require.NoError(t, tree.Insert(e))
	}
	require.True(t, tree.Remove(20))
	require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
	require.Equal(t, []int{10, 30}, iterElements[int](t, tree))
	require.Equal(t, 2, tree.(*rbTree[int]).arena.liveLen())
}

func TestRbtree_Unsupported(t *testing.T) {
	tree := NewRBTree[int]()
	_, err := AsRotator[int](tree)
	require.ErrorIs(t, err, ErrTreeUnsupportedOperation)
	_, ok := tree.(Rotator[int])
	require.False(t, ok)
}

func TestRbtree_NilPointer(t *testing.T) {
	type item struct{ key int }
	tree := NewRBTreeFunc[*item](func(i, j *item) int64 {
		return int64(i.key - j.key)
	})
	require.ErrorIs(t, tree.Insert(nil), ErrTreeInvalidArgument)
	require.True(t, tree.IsEmpty())
	require.NoError(t, tree.Insert(&item{key: 2}))
	require.True(t, tree.Contains(&item{key: 2}))
	require.False(t, tree.Contains(nil))
}

func TestRbtree_Equal(t *testing.T) {
	t1, t2 := NewRBTree[int](), NewRBTree[int]()
	for _, e := range []int{4, 2, 6} {
		require.NoError(t, t1.Insert(e))
		require.NoError(t, t2.Insert(e))
	}
	require.True(t, t1.Equal(t2))
	require.True(t, t1.Equal(t1))
	require.True(t, t1.Remove(6))
	require.False(t, t1.Equal(t2))

	// Same shape and elements, different kind.
	bst := newSearchTreeOf(4, 2, 6)
	require.False(t, t2.Equal(bst))
	require.False(t, t2.Equal(nil))
}

func TestRbtree_Duplicates(t *testing.T) {
	tree := NewRBTree[int]()
	for i := 0; i < 64; i++ {
		require.NoError(t, tree.Insert(i%4))
		require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
	}
	require.Equal(t, int64(64), tree.Len())
	for i := 0; i < 64; i++ {
		require.True(t, tree.Remove(i%4))
		require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
	}
	require.True(t, tree.IsEmpty())
}

func TestRbtree_TraceRebalance(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriter(buf),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)
	tree := NewRBTree[int](WithTreeLogger(logger))
	for i := 1; i <= 4; i++ {
		require.NoError(t, tree.Insert(i))
	}
	require.True(t, tree.Remove(4))
	require.True(t, tree.Remove(1))
	require.Contains(t, buf.String(), "\"case\":\"im5\"")
	require.Contains(t, buf.String(), "[rbtree] insert rebalance")
	require.Contains(t, buf.String(), "[rbtree] remove rebalance")
}

func rbtreeRandomInsertAndRemoveSequentialNumberRunCore(t *testing.T, opts ...TreeOption) {
	total := uint64(1000)
	insertTotal := uint64(float64(total) * 0.8)
	removeTotal := uint64(float64(total) * 0.2)

	tree := NewRBTree[uint64](opts...)
	cmp := tree.(*rbTree[uint64]).cmp

	for i := uint64(0); i < insertTotal+removeTotal; i++ {
		require.NoError(t, tree.Insert(i))
		require.NoError(t, RBTreeValidate[uint64](tree, cmp))
	}
	require.Equal(t, int64(insertTotal+removeTotal), tree.Len())

	for i := insertTotal; i < removeTotal+insertTotal; i++ {
		if i == insertTotal+92 {
			x, err := tree.Find(i)
			require.NoError(t, err)
			require.Equal(t, insertTotal+92, x.Element())
		}
		require.True(t, tree.Remove(i))
		require.NoError(t, RBTreeValidate[uint64](tree, cmp))
	}
	require.Equal(t, int64(insertTotal), tree.Len())
	elems := inorderElements[uint64](tree)
	require.True(t, sort.SliceIsSorted(elems, func(i, j int) bool {
		return cmp(elems[i], elems[j]) < 0
	}))
}

func TestRbtreeRandomInsertAndRemove_SequentialNumber(t *testing.T) {
	type testcase struct {
		name string
		opts []TreeOption
	}
	testcases := []testcase{
		{
			name: "rm by pred",
		},
		{
			name: "rm by succ",
			opts: []TreeOption{WithTreeRemoveBorrowSucc()},
		},
		{
			name: "desc rm by pred",
			opts: []TreeOption{WithTreeDesc()},
		},
		{
			name: "desc rm by succ",
			opts: []TreeOption{WithTreeDesc(), WithTreeRemoveBorrowSucc()},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomInsertAndRemoveSequentialNumberRunCore(tt, tc.opts...)
		})
	}
}

func rbtreeRandomInsertAndRemoveRandomNumberRunCore(t *testing.T, total int, opts ...TreeOption) {
	tree := NewRBTree[int](opts...)
	cmp := tree.(*rbTree[int]).cmp
	expected := make(map[int]int, total)

	for i := 0; i < total; i++ {
		e := rand.Intn(total)
		require.NoError(t, tree.Insert(e))
		expected[e]++
		require.NoError(t, RBTreeValidate[int](tree, cmp))
	}

	keys := lo.Keys(expected)
	for _, k := range lo.Shuffle(keys) {
		if rand.Intn(3) == 0 {
			continue
		}
		require.True(t, tree.Remove(k))
		require.NoError(t, RBTreeValidate[int](tree, cmp))
		if expected[k]--; expected[k] == 0 {
			delete(expected, k)
		}
	}
	require.False(t, tree.Remove(total))

	count := lo.Sum(lo.Values(expected))
	require.Equal(t, int64(count), tree.Len())
	require.Equal(t, count, tree.(*rbTree[int]).arena.liveLen())
	for k := range expected {
		require.True(t, tree.Contains(k))
	}
}

func TestRbtreeRandomInsertAndRemove_RandomNumber(t *testing.T) {
	for _, total := range []int{16, 256, 1024} {
		rbtreeRandomInsertAndRemoveRandomNumberRunCore(t, total)
		rbtreeRandomInsertAndRemoveRandomNumberRunCore(t, total, WithTreeRemoveBorrowSucc())
		rbtreeRandomInsertAndRemoveRandomNumberRunCore(t, total, WithTreeDesc())
	}
}

func TestRbtree_ClearAndReuse(t *testing.T) {
	tree := NewRBTree[int](WithTreeInitCap(4))
	for i := 0; i < 32; i++ {
		require.NoError(t, tree.Insert(i))
	}
	node, err := tree.Find(3)
	require.NoError(t, err)
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, -1, tree.Height())
	require.Equal(t, 0, tree.(*rbTree[int]).arena.liveLen())
	_, err = tree.(*rbTree[int]).owned(node)
	require.ErrorIs(t, err, ErrTreeNoSuchElement)

	for i := 0; i < 8; i++ {
		require.NoError(t, tree.Insert(i))
	}
	require.Equal(t, lo.Range(8), foreachElements[int](tree))
	require.NoError(t, RBTreeValidate[int](tree, infra.OrderedKeyCompare[int]))
}

func BenchmarkRBTree_Random(b *testing.B) {
	b.StopTimer()
	tree := NewRBTree[int]()
	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, rand.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(rngArr[i])
	}
}

func BenchmarkRBTree_Serial(b *testing.B) {
	tree := NewRBTree[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(i)
	}
	for i := 0; i < b.N; i++ {
		_ = tree.Remove(i)
	}
}
