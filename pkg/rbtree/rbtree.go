package rbtree

import (
	"cmp"
	"math"

	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"

	"generic_rbtree/pkg/array"
)

var ErrTreeFull = errors.New("rbtree: node arena is full")

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered]() *Tree[K] {
	return NewWith(natural[K]())
}

// NewWithComparator returns an empty tree ordered by a gods comparator.
func NewWithComparator[K any](c utils.Comparator) *Tree[K] {
	return NewWith(FromComparator[K](c))
}

func NewWith[K any](compare CompareFunc[K]) *Tree[K] {
	if compare == nil {
		panic(errors.New("rbtree: nil compare function"))
	}

	arr := array.New[ptr, node[K]](1)
	nullPtr := arr.Push(emptyNode[K](0))

	return &Tree[K]{
		arr:     arr,
		compare: compare,
		meta: &Metadata{
			Root:  nullPtr,
			Null:  nullPtr,
			Count: 0,
		},
	}
}

// Tree is a red-black tree of keys. Equal keys may be stored more than
// once through Insert; Put keeps them unique. A Tree is not safe for
// concurrent use.
type Tree[K any] struct {
	arr     array.Array[ptr, node[K]]
	meta    *Metadata
	compare CompareFunc[K]
}

func (tree *Tree[K]) Meta() Metadata {
	return *tree.meta
}

// Insert adds key even if an equal key is already present. Equal keys
// are placed after the existing ones in iteration order.
func (tree *Tree[K]) Insert(key K) {
	tree.insert(newNode(key, tree.meta.Null))
}

// Put adds key only if no equal key is present and reports whether it did.
func (tree *Tree[K]) Put(key K) bool {
	if tree.search(key) != tree.meta.Null {
		return false
	}

	tree.insert(newNode(key, tree.meta.Null))
	return true
}

// Delete removes one occurrence of key. It reports false, leaving the tree
// untouched, when key is absent.
func (tree *Tree[K]) Delete(key K) bool {
	z := tree.search(key)
	if z == tree.meta.Null {
		return false
	}

	tree.delete(z)
	return true
}

func (tree *Tree[K]) Has(key K) bool {
	return tree.search(key) != tree.meta.Null
}

// Count returns how many times key is stored.
func (tree *Tree[K]) Count(key K) int {
	count := 0
	for p := tree.lowerBound(key); p != tree.meta.Null && tree.equal(tree.at(p).key, key); p = tree.next(p) {
		count++
	}
	return count
}

func (tree *Tree[K]) Size() int {
	return int(tree.meta.Count)
}

func (tree *Tree[K]) Empty() bool {
	return tree.meta.Root == tree.meta.Null
}

// Clear drops every node. The sentinel is kept, so the tree stays usable.
func (tree *Tree[K]) Clear() {
	tree.arr.Truncate(tree.meta.Null + 1)
	*tree.at(tree.meta.Null) = *emptyNode[K](tree.meta.Null)
	tree.meta.Root = tree.meta.Null
	tree.meta.Count = 0
}

func (tree *Tree[K]) Min() (K, bool) {
	return tree.keyAt(tree.minimum(tree.meta.Root))
}

func (tree *Tree[K]) Max() (K, bool) {
	return tree.keyAt(tree.maximum(tree.meta.Root))
}

// Successor returns the smallest key strictly greater than key. The second
// result is false when key is not stored or nothing follows it.
func (tree *Tree[K]) Successor(key K) (K, bool) {
	if tree.search(key) == tree.meta.Null {
		var k K
		return k, false
	}
	return tree.keyAt(tree.upperBound(key))
}

// Predecessor returns the greatest key strictly smaller than key. The
// second result is false when key is not stored or nothing precedes it.
func (tree *Tree[K]) Predecessor(key K) (K, bool) {
	if tree.search(key) == tree.meta.Null {
		var k K
		return k, false
	}
	return tree.keyAt(tree.lastBelow(key))
}

// Floor returns the greatest key less than or equal to key.
func (tree *Tree[K]) Floor(key K) (K, bool) {
	return tree.keyAt(tree.floor(key))
}

// Ceiling returns the smallest key greater than or equal to key.
func (tree *Tree[K]) Ceiling(key K) (K, bool) {
	return tree.keyAt(tree.lowerBound(key))
}

// Height returns the number of nodes on the longest root to leaf path.
func (tree *Tree[K]) Height() int {
	height := 0
	for info := range tree.PostOrder() {
		if info.Depth+1 > height {
			height = info.Depth + 1
		}
	}
	return height
}

func (tree *Tree[K]) at(p ptr) *node[K] {
	return tree.arr.Get(p)
}

func (tree *Tree[K]) keyAt(p ptr) (K, bool) {
	if p == tree.meta.Null {
		var k K
		return k, false
	}
	return tree.at(p).key, true
}

func (tree *Tree[K]) search(key K) ptr {
	p := tree.meta.Root
	for p != tree.meta.Null {
		switch c := tree.compare(key, tree.at(p).key); {
		case c == 0:
			return p
		case c < 0:
			p = tree.at(p).left
		default:
			p = tree.at(p).right
		}
	}
	return tree.meta.Null
}

// lowerBound returns the first node, in key order, not less than key.
func (tree *Tree[K]) lowerBound(key K) ptr {
	found := tree.meta.Null
	p := tree.meta.Root
	for p != tree.meta.Null {
		if tree.less(tree.at(p).key, key) {
			p = tree.at(p).right
		} else {
			found = p
			p = tree.at(p).left
		}
	}
	return found
}

// upperBound returns the first node, in key order, greater than key.
func (tree *Tree[K]) upperBound(key K) ptr {
	found := tree.meta.Null
	p := tree.meta.Root
	for p != tree.meta.Null {
		if tree.less(key, tree.at(p).key) {
			found = p
			p = tree.at(p).left
		} else {
			p = tree.at(p).right
		}
	}
	return found
}

// floor returns the last node, in key order, not greater than key.
func (tree *Tree[K]) floor(key K) ptr {
	found := tree.meta.Null
	p := tree.meta.Root
	for p != tree.meta.Null {
		if tree.less(key, tree.at(p).key) {
			p = tree.at(p).left
		} else {
			found = p
			p = tree.at(p).right
		}
	}
	return found
}

// lastBelow returns the last node, in key order, less than key.
func (tree *Tree[K]) lastBelow(key K) ptr {
	found := tree.meta.Null
	p := tree.meta.Root
	for p != tree.meta.Null {
		if tree.less(tree.at(p).key, key) {
			found = p
			p = tree.at(p).right
		} else {
			p = tree.at(p).left
		}
	}
	return found
}

func (tree *Tree[K]) minimum(x ptr) ptr {
	if x == tree.meta.Null {
		return x
	}
	for tree.at(x).left != tree.meta.Null {
		x = tree.at(x).left
	}
	return x
}

func (tree *Tree[K]) maximum(x ptr) ptr {
	if x == tree.meta.Null {
		return x
	}
	for tree.at(x).right != tree.meta.Null {
		x = tree.at(x).right
	}
	return x
}

// next returns the in-order successor node of x, or the sentinel.
func (tree *Tree[K]) next(x ptr) ptr {
	if tree.at(x).right != tree.meta.Null {
		return tree.minimum(tree.at(x).right)
	}

	y := tree.at(x).parent
	for y != tree.meta.Null && x == tree.at(y).right {
		x = y
		y = tree.at(y).parent
	}
	return y
}

// prev returns the in-order predecessor node of x, or the sentinel.
func (tree *Tree[K]) prev(x ptr) ptr {
	if tree.at(x).left != tree.meta.Null {
		return tree.maximum(tree.at(x).left)
	}

	y := tree.at(x).parent
	for y != tree.meta.Null && x == tree.at(y).left {
		x = y
		y = tree.at(y).parent
	}
	return y
}

// height is an upper bound on the tree height, used to size traversal
// stacks.
func (tree *Tree[K]) height() int {
	return 2*int(math.Ceil(math.Log2(float64(tree.meta.Count+1)))) + 1
}

// free releases the arena slot of a detached node by moving the last node
// of the arena into it.
func (tree *Tree[K]) free(p ptr) {
	lastNodePtr := tree.arr.Len() - 1
	if p == lastNodePtr {
		tree.arr.Popn()
		return
	}

	lastNode := tree.arr.Pop()
	*tree.at(p) = lastNode

	switch {
	case lastNode.parent == tree.meta.Null:
		tree.meta.Root = p
	case tree.at(lastNode.parent).left == lastNodePtr:
		tree.at(lastNode.parent).left = p
	default:
		tree.at(lastNode.parent).right = p
	}

	if lastNode.left != tree.meta.Null {
		tree.at(lastNode.left).parent = p
	}

	if lastNode.right != tree.meta.Null {
		tree.at(lastNode.right).parent = p
	}
}
