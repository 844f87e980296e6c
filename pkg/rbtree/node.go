package rbtree

type ptr = uint32

type Color byte

const (
	Black Color = Color(FV_COLOR_BLACK)
	Red   Color = Color(FV_COLOR_RED)
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

type flagValue byte

const (
	FV_COLOR_BLACK flagValue = 0b00000000
	FV_COLOR_RED   flagValue = 0b00000001
)

type flagType byte

const (
	FT_COLOR flagType = 0
)

func newNode[K any](key K, null ptr) *node[K] {
	return &node[K]{
		left:   null,
		right:  null,
		parent: null,
		flags:  FV_COLOR_RED,
		key:    key,
	}
}

// emptyNode is the sentinel: black, zero key, every link pointing at itself.
func emptyNode[K any](null ptr) *node[K] {
	n := &node[K]{
		left:   null,
		right:  null,
		parent: null,
	}
	n.setBlack()
	return n
}

type node[K any] struct {
	left   ptr
	right  ptr
	parent ptr
	flags  flagValue
	key    K
}

func (n *node[K]) isBlack() bool {
	return n.getFlag(FT_COLOR) == FV_COLOR_BLACK
}

func (n *node[K]) isRed() bool {
	return n.getFlag(FT_COLOR) == FV_COLOR_RED
}

func (n *node[K]) setBlack() {
	n.setFlag(FT_COLOR, FV_COLOR_BLACK)
}

func (n *node[K]) setRed() {
	n.setFlag(FT_COLOR, FV_COLOR_RED)
}

func (n *node[K]) color() Color {
	return Color(n.getFlag(FT_COLOR))
}

func (n *node[K]) setFlag(ft flagType, fv flagValue) {
	mask := ^(byte(1) << ft)
	mask &= byte(n.flags)
	n.flags = flagValue(mask) | fv
}

func (n *node[K]) getFlag(ft flagType) flagValue {
	return n.flags & flagValue(byte(1)<<byte(ft))
}
