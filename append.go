package pvector

// Append returns a copy of v with x added as the new last element. It
// always succeeds; Len grows by exactly one (spec.md §4.3).
//
// Three cases, tested in order, exactly mirror spec.md §4.3:
//  1. the tail has room: just clone-and-extend the tail.
//  2. the tail is full but the root has spare capacity: the old tail is
//     promoted into the root as a new, full leaf.
//  3. the root itself is at capacity: grow one level, hanging the old
//     root and a fresh right-spine path (ending in the promoted tail) off
//     a brand new two-child root.
func (v Vector[T]) Append(x T) Vector[T] {
	v = v.normalize()

	if v.cnt-v.tailStart() < v.props.width {
		newTail := v.tail.clone(v.props.width)
		newTail.array[newTail.len] = x
		newTail.len++
		v.cnt++
		v.tail = newTail
		return v
	}

	tailNode := v.tail.clone(v.props.width)
	newShift := v.shift

	var newRoot *node
	if (v.cnt >> v.props.bits) > (1 << v.shift) {
		// Root is full: grow one level. The old root becomes the first
		// child; a fresh right-spine path terminating in the promoted
		// tail becomes the second.
		newRoot = newNode(v.props.width)
		newRoot.len = 2
		newRoot.array[0] = v.root
		newRoot.array[1] = newPath(v.shift, v.props.bits, v.props.width, tailNode)
		newShift += v.props.bits
		traceRootGrowth(v.shift, newShift, v.cnt+1)
	} else {
		newRoot = v.pushTail(v.shift, v.root, tailNode)
	}

	v.cnt++
	v.shift = newShift
	v.root = newRoot
	v.tail = newLeaf(v.props.width, x)
	return v
}

// pushTail walks down from parent at level, copying each node on the
// path, and hangs tailNode at the next free slot: either directly (once
// level reaches the leaf level) or by recursing one level deeper into an
// existing child, or by building a fresh path when no child exists yet
// on that branch (spec.md §4.3).
func (v Vector[T]) pushTail(level int, parent, tailNode *node) *node {
	subidx := ((v.cnt - 1) >> level) & v.props.mask
	ret := parent.clone(v.props.width)

	var toInsert *node
	if level == v.props.bits {
		toInsert = tailNode
	} else if child := parent.child(subidx); child != nil {
		toInsert = v.pushTail(level-v.props.bits, child, tailNode)
	} else {
		toInsert = newPath(level-v.props.bits, v.props.bits, v.props.width, tailNode)
	}

	if ret.array[subidx] == nil {
		ret.len++
	}
	ret.array[subidx] = toInsert
	return ret
}

func newLeaf(width int, x any) *node {
	n := newNode(width)
	n.len = 1
	n.array[0] = x
	return n
}
