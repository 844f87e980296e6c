package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint draws the tree sideways: the root on the left, right subtrees
// above their parent and left subtrees below.
func (tree *Tree[K]) Fprint(w io.Writer) error {
	if tree.meta.Root == tree.meta.Null {
		return nil
	}
	return tree.print(w, tree.meta.Root, 0, 2)
}

func (tree *Tree[K]) print(w io.Writer, root ptr, space int, shift int) error {
	if root == tree.meta.Null {
		return nil
	}

	space += shift

	if err := tree.print(w, tree.at(root).right, space, shift); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s%v %s\n",
		strings.Repeat(" ", space-shift),
		tree.at(root).key,
		tree.at(root).color(),
	)
	if err != nil {
		return err
	}

	return tree.print(w, tree.at(root).left, space, shift)
}
