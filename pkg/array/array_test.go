package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	key  int
	next uint32
}

func TestPushGetSet(t *testing.T) {
	arr := New[uint32, item](0)
	for i := 0; i < 10; i++ {
		index := arr.Push(&item{key: i})
		require.Equal(t, uint32(i), index)
	}
	require.Equal(t, uint32(10), arr.Len())

	arr.Get(3).key = 33
	require.Equal(t, 33, arr.Get(3).key)

	arr.Set(4, &item{key: 44, next: 5})
	require.Equal(t, item{key: 44, next: 5}, *arr.Get(4))
	require.Equal(t, 9, arr.Last().key)
}

func TestPopZeroesSlot(t *testing.T) {
	arr := New[int32, *item](2)
	first := &item{key: 1}
	arr.Push(&first)
	p := &item{key: 2}
	arr.Push(&p)

	popped := arr.Pop()
	require.Same(t, p, popped)
	require.Equal(t, int32(1), arr.Len())

	arr.Grow(2)
	require.Nil(t, *arr.Get(1), "expecting popped slot to be zeroed")
}

func TestSwap(t *testing.T) {
	arr := New[int, item](0)
	arr.Push(&item{key: 1})
	arr.Push(&item{key: 2})
	arr.Swap(0, 1)
	require.Equal(t, 2, arr.Get(0).key)
	require.Equal(t, 1, arr.Get(1).key)
}

func TestTruncateAndGrow(t *testing.T) {
	arr := New[uint16, item](0)
	for i := 0; i < 5; i++ {
		arr.Push(&item{key: i + 1})
	}

	arr.Truncate(1)
	require.Equal(t, uint16(1), arr.Len())
	require.Equal(t, 1, arr.Get(0).key)

	arr.Grow(5)
	require.Equal(t, uint16(5), arr.Len())
	for i := uint16(1); i < 5; i++ {
		require.Equal(t, item{}, *arr.Get(i))
	}
	require.GreaterOrEqual(t, arr.Cap(), uint16(5))
}

func TestOutOfBounds(t *testing.T) {
	arr := New[uint32, item](0)
	require.Panics(t, func() { arr.Get(0) })
	require.Panics(t, func() { arr.Pop() })
	require.Panics(t, func() { arr.Truncate(1) })

	arr.Push(&item{})
	require.NotPanics(t, func() { arr.Get(0) })
	require.Panics(t, func() { arr.Swap(0, 1) })
}
