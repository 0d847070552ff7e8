package pvector

// RemoveLast returns a copy of v without its final element. It panics
// with an *ArgumentError if v is empty (spec.md §4.4).
//
// Three cases, tested in order:
//  1. cnt == 1: the canonical empty vector (with v's branch
//     configuration preserved).
//  2. the tail holds more than one element: drop its last slot.
//  3. the tail is a singleton: it must be refilled by promoting the
//     rightmost leaf out of the root, collapsing the root by one level
//     if that leaves it with a single child (spec.md §3, invariant 5).
func (v Vector[T]) RemoveLast() Vector[T] {
	v = v.normalize()

	if v.cnt == 0 {
		panic(argErrRemoveLastEmpty())
	}

	if v.cnt == 1 {
		return emptyLike[T](v.props)
	}

	if v.cnt-v.tailStart() > 1 {
		newTail := v.tail.clone(v.props.width)
		newTail.array[newTail.len-1] = nil
		newTail.len--
		v.cnt--
		v.tail = newTail
		return v
	}

	newTail := v.leafFor(v.cnt - 2)
	newRoot := v.popTail(v.shift, v.root)
	newShift := v.shift

	if newRoot == nil {
		newRoot = newNode(v.props.width)
	}
	if v.shift > v.props.bits && newRoot.len == 1 {
		newRoot = newRoot.child(0)
		newShift -= v.props.bits
		traceRootCollapse(v.shift, newShift, v.cnt-1)
	}

	v.cnt--
	v.shift = newShift
	v.root = newRoot
	v.tail = newTail
	return v
}

// popTail removes the rightmost leaf from the subtree rooted at n
// (at the given level), returning nil if n itself becomes empty — the
// signal its parent uses to drop the now-dangling child reference
// entirely rather than keep a node with zero occupants (spec.md §4.4).
func (v Vector[T]) popTail(level int, n *node) *node {
	subidx := ((v.cnt - 2) >> level) & v.props.mask

	if level > v.props.bits {
		newChild := v.popTail(level-v.props.bits, n.child(subidx))
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret := n.clone(v.props.width)
		if newChild == nil {
			ret.array[subidx] = nil
			ret.len--
		} else {
			ret.array[subidx] = newChild
		}
		return ret
	}

	if subidx == 0 {
		return nil
	}

	ret := n.clone(v.props.width)
	ret.array[subidx] = nil
	ret.len--
	return ret
}

func emptyLike[T any](p props) Vector[T] {
	n := newNode(p.width)
	return Vector[T]{props: p, shift: p.bits, root: n, tail: n}
}
