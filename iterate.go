package pvector

import "iter"

// Range calls f once per element in ascending index order, stopping
// early if f returns false. It is a convenience layer over Reduce for
// callers who just want a for-each with early exit and don't need
// suspend/resume (grounded in jsouthworth/immutable's reflective
// Range(do interface{}), reimplemented here as an ordinary typed
// function value — the idiomatic Go rendition of the same adapter).
func (v Vector[T]) Range(f func(i int, x T) bool) {
	Reduce[T, int](v, Cont(0), func(x T, i int) Command[int] {
		if !f(i, x) {
			return Halt(i)
		}
		return Cont(i + 1)
	})
}

// All returns a range-over-func iterator yielding (index, value) pairs
// in ascending order, layered on Range/Reduce (spec.md §4.7's iteration
// adapter; pattern grounded in gaissmai/bart's All()/AllSorted() family).
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Range(func(i int, x T) bool { return yield(i, x) })
	}
}

// Values returns a range-over-func iterator yielding just the values, in
// ascending index order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.Range(func(_ int, x T) bool { return yield(x) })
	}
}
