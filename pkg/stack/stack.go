package stack

import (
	"github.com/pkg/errors"
)

var ErrEmptyStack = errors.New("empty stack")

type stack[T any] struct {
	s []T
}

type Stack[T any] interface {
	Push(v T)
	Pop() T
	Top() T
	Size() int
	Empty() bool
	Reset()
}

// New returns an empty stack with room for initialSize values before the
// backing slice has to grow.
func New[T any](initialSize int) Stack[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	return &stack[T]{make([]T, 0, initialSize)}
}

func (s *stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

func (s *stack[T]) Pop() T {
	value := s.Top()
	l := len(s.s)
	var zero T
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value
}

func (s *stack[T]) Top() T {
	l := len(s.s)
	if l == 0 {
		panic(ErrEmptyStack)
	}

	return s.s[l-1]
}

func (s *stack[T]) Size() int {
	return len(s.s)
}

func (s *stack[T]) Empty() bool {
	return len(s.s) == 0
}

// Reset drops every value but keeps the allocated capacity.
func (s *stack[T]) Reset() {
	clear(s.s)
	s.s = s.s[:0]
}
