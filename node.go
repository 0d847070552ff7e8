package pvector

// defaultBits and defaultWidth give the default fan-out of both interior
// nodes and leaves: 32-way,
// giving a 5-bit digit per trie level (spec.md §2).
const (
	defaultBits  = 5
	defaultWidth = 1 << defaultBits
)

// node is the single representation shared by interior nodes and leaves.
// An interior node's array holds *node children; a leaf's array holds
// values of T. len tracks occupancy so the rightmost spine of a trie can
// hold partially-filled nodes while every other node stays exactly full
// (spec.md §3, invariant 2).
//
// Nodes are never mutated after construction. clone is the only way to
// get a new one from an old one, and it is always followed by overwriting
// exactly the slots that change; every slot that isn't touched keeps
// pointing at the original's children, which is the structural sharing
// the whole data structure is built on.
type node struct {
	len   int
	array []any
}

func newNode(width int) *node {
	return &node{array: make([]any, width)}
}

func (n *node) clone(width int) *node {
	if n == nil {
		return newNode(width)
	}
	cp := &node{len: n.len, array: make([]any, width)}
	copy(cp.array, n.array)
	return cp
}

func (n *node) child(i int) *node {
	if n == nil {
		return nil
	}
	c, _ := n.array[i].(*node)
	return c
}

// newPath builds a right spine of singleton interior nodes from level down
// to (but not including) the leaf level, terminating in leaf. Used when a
// promoted tail/leaf needs a brand new ancestor chain because nothing
// exists yet at the branch it would hang from (spec.md §4.3).
func newPath(level, bits, width int, leaf *node) *node {
	if level <= 0 {
		return leaf
	}
	p := newNode(width)
	p.len = 1
	p.array[0] = newPath(level-bits, bits, width, leaf)
	return p
}
