package rbtree

import (
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Tree[int])(nil)

// Values returns every key in ascending order, boxed for gods consumers.
func (tree *Tree[K]) Values() []interface{} {
	values := make([]interface{}, 0, tree.Size())
	for k := range tree.InOrder() {
		values = append(values, k)
	}
	return values
}

func (tree *Tree[K]) String() string {
	var sb strings.Builder
	sb.WriteString("RBTree\n")
	tree.Fprint(&sb)
	return sb.String()
}
