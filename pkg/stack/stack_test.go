package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int](2)
	require.True(t, s.Empty())

	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Size())
	require.Equal(t, 4, s.Top())

	for i := 4; i >= 0; i-- {
		require.Equal(t, i, s.Pop())
	}
	require.True(t, s.Empty())
}

func TestEmptyStackPanics(t *testing.T) {
	s := New[string](-1)
	require.PanicsWithValue(t, ErrEmptyStack, func() { s.Pop() })
	require.PanicsWithValue(t, ErrEmptyStack, func() { s.Top() })
}

func TestReset(t *testing.T) {
	s := New[*int](0)
	v := 1
	s.Push(&v)
	s.Push(&v)
	s.Reset()
	require.Equal(t, 0, s.Size())

	s.Push(nil)
	require.Nil(t, s.Top())
}
