package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeArena_AllocateAndRecycle(t *testing.T) {
	arena := newNodeArena[int](2)
	require.Equal(t, 0, arena.liveLen())
	require.False(t, arena.isLive(nilIdx))

	a := arena.allocate(1, Red)
	b := arena.allocate(2, Black)
	c := arena.allocate(3, NoColor)
	require.NotEqual(t, nilIdx, a)
	require.Equal(t, 3, arena.liveLen())
	require.Equal(t, 2, arena.get(b).elem)
	require.Equal(t, Black, arena.get(b).color)
	require.True(t, arena.isLive(c))

	arena.recycle(b)
	require.False(t, arena.isLive(b))
	require.Equal(t, 2, arena.liveLen())
	require.Equal(t, 0, arena.get(b).elem)

	// Double recycle is ignored.
	arena.recycle(b)
	require.Equal(t, 2, arena.liveLen())

	d := arena.allocate(4, Red)
	require.Equal(t, b, d, "recycled slot reused")
	require.Equal(t, 4, arena.get(d).elem)
	require.Equal(t, nilIdx, arena.get(d).parent)

	arena.reset()
	require.Equal(t, 0, arena.liveLen())
	require.False(t, arena.isLive(a))
}

func TestNodeArena_AccessAbsentNode(t *testing.T) {
	arena := newNodeArena[int](0)
	require.Panics(t, func() {
		arena.get(nilIdx)
	})
}

func TestNodeArena_RecycleDropsReference(t *testing.T) {
	arena := newNodeArena[*int](0)
	v := 1
	idx := arena.allocate(&v, NoColor)
	arena.recycle(idx)
	require.Nil(t, arena.nodes[idx].elem)
}
