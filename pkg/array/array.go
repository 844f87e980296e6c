package array

import (
	"fmt"
)

type Integer interface {
	~int   | ~uint   |
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
	~int8  | ~int16  | ~int32  | ~int64
}

// Array is a growable arena of T addressed by index I. Pointers returned by
// Get and Last stay valid until the next Push or Grow.
type Array[I Integer, T any] interface {
	Get(index I) *T
	Last() *T
	Set(index I, val *T)
	Push(val *T) I
	Popn()
	Pop() T
	Swap(i, j I)
	Len() I
	Cap() I
	Truncate(size I)
	Grow(size I)
}

type array[I Integer, T any] struct {
	items []T
}

func New[I Integer, T any](capacity int) Array[I, T] {
	return &array[I, T]{
		items: make([]T, 0, capacity),
	}
}

func (a *array[I, T]) Get(index I) *T {
	a.checkBounds(index)
	return &a.items[int(index)]
}

func (a *array[I, T]) Last() *T {
	return a.Get(a.Len() - 1)
}

func (a *array[I, T]) Set(index I, val *T) {
	*a.Get(index) = *val
}

func (a *array[I, T]) Push(val *T) I {
	a.items = append(a.items, *val)
	return a.Len() - 1
}

func (a *array[I, T]) Popn() {
	a.Pop()
}

func (a *array[I, T]) Pop() T {
	index := a.Len() - 1
	val := *a.Get(index)
	var zero T
	a.items[int(index)] = zero
	a.items = a.items[:int(index)]
	return val
}

func (a *array[I, T]) Swap(i, j I) {
	a.checkBounds(i)
	a.checkBounds(j)
	a.items[int(i)], a.items[int(j)] = a.items[int(j)], a.items[int(i)]
}

func (a *array[I, T]) Len() I {
	return I(len(a.items))
}

func (a *array[I, T]) Cap() I {
	return I(cap(a.items))
}

// Truncate shrinks the array to size elements, zeroing the dropped slots so
// whatever they referenced can be collected. Growing is left to Grow.
func (a *array[I, T]) Truncate(size I) {
	if size < 0 || size > a.Len() {
		panic(fmt.Errorf("out of bounds: truncate to %d, len:%d", size, a.Len()))
	}

	clear(a.items[int(size):])
	a.items = a.items[:int(size)]
}

func (a *array[I, T]) Grow(size I) {
	if size <= a.Len() {
		return
	}

	if size > a.Cap() {
		items := make([]T, len(a.items), int(size))
		copy(items, a.items)
		a.items = items
	}
	a.items = a.items[:int(size)]
}

func (a *array[I, T]) checkBounds(index I) {
	if index < 0 || index >= a.Len() {
		panic(fmt.Errorf("out of bounds: %d, len:%d", index, a.Len()))
	}
}
