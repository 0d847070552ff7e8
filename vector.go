// Package pvector implements a persistent, indexed vector: an immutable,
// array-like container of arbitrary values addressed by a contiguous,
// zero-based integer index. Every mutating operation returns a new
// logical vector; the value it was derived from remains valid and
// unchanged. Sharing between versions is structural: the cost of an
// update is bounded by the depth of the underlying trie, not by the
// vector's size.
package pvector

// props carries the branching configuration of a Vector. The zero value
// (bits: 0) is never observed on a live Vector — normalize fills it in
// with the default 32-way branching the first time it's needed, which is
// what lets the Go zero value Vector[T]{} double as the canonical empty
// vector (spec.md §3, invariant 6).
type props struct {
	bits  int
	width int
	mask  int
}

func (p props) normalize() props {
	if p.bits == 0 {
		p.bits = defaultBits
	}
	if p.width == 0 {
		p.width = 1 << p.bits
	}
	p.mask = p.width - 1
	return p
}

// Option configures the branch factor of a Vector at construction time.
// Ordinary callers never need one; spec.md sanctions a smaller branch
// factor purely to let tests stress deep tries with small inputs.
type Option func(props) props

// WithBranchExponent sets the trie's fan-out to 2^n (n in [1,5]; the
// production default is n=5, i.e. 32-way branching). Values outside that
// range are clamped. Use a small exponent such as 2 (4-way branching) in
// tests that want to exercise multi-level promotion/collapse without
// building tens of thousands of elements.
func WithBranchExponent(n int) Option {
	return func(p props) props {
		if n < 1 {
			n = 1
		}
		if n > 5 {
			n = 5
		}
		p.bits = n
		p.width = 1 << n
		p.mask = p.width - 1
		return p
	}
}

func newProps(opts []Option) props {
	p := props{}.normalize()
	for _, opt := range opts {
		p = opt(p)
	}
	return p.normalize()
}

// Vector is an immutable, indexed sequence of values of type T. The zero
// value is the canonical empty vector and is ready to use.
type Vector[T any] struct {
	props
	cnt, shift int
	root, tail *node
}

// Empty returns the canonical empty vector. With no options it behaves
// the same as the zero value Vector[T]{}, though its fields are already
// filled in rather than left zero.
func Empty[T any](opts ...Option) Vector[T] {
	p := newProps(opts)
	n := newNode(p.width)
	return Vector[T]{props: p, shift: p.bits, root: n, tail: n}
}

// New builds a vector containing items, in order, via repeated Append
// (spec.md §6, `new(enumerable)`).
func New[T any](items []T, opts ...Option) Vector[T] {
	b := NewBuilder[T](opts...)
	b.Append(items...)
	return b.Build()
}

// Of is the variadic convenience form of New, mirroring the teacher's
// own New(items ...T) signature.
func Of[T any](items ...T) Vector[T] {
	return New(items)
}

func (v Vector[T]) normalize() Vector[T] {
	if v.props.bits == 0 {
		v.props = props{}.normalize()
	}
	if v.root == nil {
		v.root = newNode(v.props.width)
	}
	if v.tail == nil {
		v.tail = newNode(v.props.width)
	}
	if v.shift == 0 {
		v.shift = v.props.bits
	}
	return v
}

// Len returns the number of elements in v, in O(1) (spec.md §4.7,
// "count(v) = v.count").
func (v Vector[T]) Len() int { return v.cnt }

// IsEmpty reports whether v has no elements.
func (v Vector[T]) IsEmpty() bool { return v.cnt == 0 }

// tailStart is the smallest index that resides in the tail
// (spec.md §3, invariant 3).
func (v Vector[T]) tailStart() int {
	if v.cnt < v.props.width {
		return 0
	}
	return ((v.cnt - 1) >> v.props.bits) << v.props.bits
}

// leafFor walks the root to the leaf holding index i. i must already be
// known to be < tailStart(v).
func (v Vector[T]) leafFor(i int) *node {
	n := v.root
	for level := v.shift; level > 0; level -= v.props.bits {
		n = n.child((i >> level) & v.props.mask)
	}
	return n
}
