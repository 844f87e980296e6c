package rbtree

// Metadata locates the root and the sentinel inside the node arena.
type Metadata struct {
	Root  ptr
	Null  ptr
	Count uint64
}
