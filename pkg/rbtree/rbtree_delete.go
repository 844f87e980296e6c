package rbtree

func (tree *Tree[K]) delete(z ptr) {
	var x ptr
	y := z
	yOriginalColor := tree.at(y).getFlag(FT_COLOR)

	if tree.at(z).left == tree.meta.Null { // no children or only right
		x = tree.at(z).right
		tree.transplant(z, x)
	} else if tree.at(z).right == tree.meta.Null { // only left child
		x = tree.at(z).left
		tree.transplant(z, x)
	} else { // both children
		y = tree.minimum(tree.at(z).right)
		yOriginalColor = tree.at(y).getFlag(FT_COLOR)
		x = tree.at(y).right

		if tree.at(y).parent == z { // y is direct child of z
			// x may be the sentinel; fixDelete walks up from it
			tree.at(x).parent = y
		} else {
			tree.transplant(y, x)
			tree.at(y).right = tree.at(z).right
			tree.at(tree.at(y).right).parent = y
		}

		tree.transplant(z, y)

		tree.at(y).left = tree.at(z).left
		tree.at(tree.at(y).left).parent = y
		tree.at(y).setFlag(FT_COLOR, tree.at(z).getFlag(FT_COLOR))
	}

	if yOriginalColor == FV_COLOR_BLACK {
		tree.fixDelete(x)
	}

	tree.at(tree.meta.Null).parent = tree.meta.Null
	tree.free(z)
	tree.meta.Count--
}

func (tree *Tree[K]) fixDelete(x ptr) {
	for x != tree.meta.Root && tree.at(x).isBlack() {
		if x == tree.at(tree.at(x).parent).left {
			w := tree.at(tree.at(x).parent).right

			if tree.at(w).isRed() { // case 1
				tree.at(w).setBlack()
				tree.at(tree.at(x).parent).setRed()

				tree.leftRotate(tree.at(x).parent)
				w = tree.at(tree.at(x).parent).right
			}

			if tree.at(tree.at(w).left).isBlack() && tree.at(tree.at(w).right).isBlack() { // case 2
				tree.at(w).setRed()
				x = tree.at(x).parent
			} else { // case 3, 4
				if tree.at(tree.at(w).right).isBlack() { // case 3
					tree.at(tree.at(w).left).setBlack()
					tree.at(w).setRed()

					tree.rightRotate(w)
					w = tree.at(tree.at(x).parent).right
				}

				// case 4
				tree.at(w).setFlag(FT_COLOR, tree.at(tree.at(x).parent).getFlag(FT_COLOR))
				tree.at(tree.at(x).parent).setBlack()
				tree.at(tree.at(w).right).setBlack()

				tree.leftRotate(tree.at(x).parent)
				x = tree.meta.Root
			}
		} else {
			w := tree.at(tree.at(x).parent).left

			if tree.at(w).isRed() { // case 1
				tree.at(w).setBlack()
				tree.at(tree.at(x).parent).setRed()

				tree.rightRotate(tree.at(x).parent)
				w = tree.at(tree.at(x).parent).left
			}

			if tree.at(tree.at(w).right).isBlack() && tree.at(tree.at(w).left).isBlack() { // case 2
				tree.at(w).setRed()
				x = tree.at(x).parent
			} else { // case 3, 4
				if tree.at(tree.at(w).left).isBlack() { // case 3
					tree.at(tree.at(w).right).setBlack()
					tree.at(w).setRed()

					tree.leftRotate(w)
					w = tree.at(tree.at(x).parent).left
				}

				// case 4
				tree.at(w).setFlag(FT_COLOR, tree.at(tree.at(x).parent).getFlag(FT_COLOR))
				tree.at(tree.at(x).parent).setBlack()
				tree.at(tree.at(w).left).setBlack()

				tree.rightRotate(tree.at(x).parent)
				x = tree.meta.Root
			}
		}
	}

	tree.at(x).setBlack()
}

// transplant puts the subtree rooted at v where the subtree rooted at u
// hangs. v may be the sentinel, whose parent link is then set too.
func (tree *Tree[K]) transplant(u, v ptr) {
	if tree.at(u).parent == tree.meta.Null { // u is root
		tree.meta.Root = v
	} else {
		if u == tree.at(tree.at(u).parent).left { // u is left child
			tree.at(tree.at(u).parent).left = v
		} else { // u is right child
			tree.at(tree.at(u).parent).right = v
		}
	}

	tree.at(v).parent = tree.at(u).parent
}
