package rbtree

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// CompareFunc orders keys: negative when a < b, zero when equal, positive
// when a > b. It must describe a strict total order.
type CompareFunc[K any] func(a, b K) int

// FromComparator adapts a gods comparator such as utils.IntComparator.
func FromComparator[K any](c utils.Comparator) CompareFunc[K] {
	return func(a, b K) int {
		return c(a, b)
	}
}

func natural[K cmp.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}

func (tree *Tree[K]) less(a, b K) bool {
	return tree.compare(a, b) < 0
}

func (tree *Tree[K]) equal(a, b K) bool {
	return tree.compare(a, b) == 0
}
