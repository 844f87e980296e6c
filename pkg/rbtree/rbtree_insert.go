package rbtree

import "math"

func (tree *Tree[K]) insert(zNode *node[K]) ptr {
	if tree.arr.Len() == math.MaxUint32 {
		panic(ErrTreeFull)
	}

	y := tree.meta.Null
	temp := tree.meta.Root

	// equal keys go right
	for temp != tree.meta.Null {
		y = temp
		if tree.less(zNode.key, tree.at(temp).key) {
			temp = tree.at(temp).left
		} else {
			temp = tree.at(temp).right
		}
	}

	zNode.parent = y
	zNode.left = tree.meta.Null
	zNode.right = tree.meta.Null
	z := tree.arr.Push(zNode)
	tree.meta.Count++

	if y == tree.meta.Null {
		tree.meta.Root = z
		tree.at(z).setBlack()
		return z
	}

	if tree.less(zNode.key, tree.at(y).key) {
		tree.at(y).left = z
	} else {
		tree.at(y).right = z
	}

	// a child of the root has a black parent
	if tree.at(y).parent == tree.meta.Null {
		return z
	}

	tree.fixInsert(z)
	return z
}

// fixInsert restores the red rule above z. The parent of the root is the
// black sentinel, so the loop also ends once z reaches the root.
func (tree *Tree[K]) fixInsert(z ptr) {
	for tree.at(tree.at(z).parent).isRed() {
		parent := tree.at(z).parent
		grandparent := tree.at(parent).parent

		if parent == tree.at(grandparent).left { // first 3 cases
			y := tree.at(grandparent).right // z uncle

			// first subcase
			if tree.at(y).isRed() {
				tree.at(parent).setBlack()
				tree.at(y).setBlack()
				tree.at(grandparent).setRed()
				z = grandparent
			} else { // second and third subcases
				if z == tree.at(parent).right { // second subcase, turning to third
					z = parent
					tree.leftRotate(z)
				}

				// third case
				tree.at(tree.at(z).parent).setBlack()
				tree.at(tree.at(tree.at(z).parent).parent).setRed()
				tree.rightRotate(tree.at(tree.at(z).parent).parent)
			}
		} else { // other 3 cases
			y := tree.at(grandparent).left // z uncle

			// first subcase
			if tree.at(y).isRed() {
				tree.at(parent).setBlack()
				tree.at(y).setBlack()
				tree.at(grandparent).setRed()
				z = grandparent
			} else { // second and third subcases
				if z == tree.at(parent).left { // second subcase, turning to third
					z = parent
					tree.rightRotate(z)
				}

				// third case
				tree.at(tree.at(z).parent).setBlack()
				tree.at(tree.at(tree.at(z).parent).parent).setRed()
				tree.leftRotate(tree.at(tree.at(z).parent).parent)
			}
		}
	}

	tree.at(tree.meta.Root).setBlack()
}

func (tree *Tree[K]) leftRotate(x ptr) {
	y := tree.at(x).right

	tree.at(x).right = tree.at(y).left
	if tree.at(y).left != tree.meta.Null {
		tree.at(tree.at(y).left).parent = x
	}

	tree.at(y).parent = tree.at(x).parent

	if tree.at(x).parent == tree.meta.Null { // x is root
		tree.meta.Root = y
	} else {
		if tree.at(tree.at(x).parent).left == x { // x is left child
			tree.at(tree.at(x).parent).left = y
		} else { // x is right child
			tree.at(tree.at(x).parent).right = y
		}
	}

	tree.at(y).left = x
	tree.at(x).parent = y
}

func (tree *Tree[K]) rightRotate(x ptr) {
	y := tree.at(x).left

	tree.at(x).left = tree.at(y).right
	if tree.at(y).right != tree.meta.Null {
		tree.at(tree.at(y).right).parent = x
	}

	tree.at(y).parent = tree.at(x).parent

	if tree.at(x).parent == tree.meta.Null { // x is root
		tree.meta.Root = y
	} else {
		if tree.at(tree.at(x).parent).right == x { // x is right child
			tree.at(tree.at(x).parent).right = y
		} else { // x is left child
			tree.at(tree.at(x).parent).left = y
		}
	}

	tree.at(y).right = x
	tree.at(x).parent = y
}
