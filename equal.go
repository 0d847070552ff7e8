package pvector

// Equal reports whether a and b hold the same count and the same
// elements in the same order (spec.md §8 property 2 requires exactly
// this notion of equality for its "equality under different construction
// paths" property). Grounded in jsouthworth/immutable's Equal and
// dmiller/go-seq's Equiv, specialized here to a comparable element type
// instead of a reflection-based fallback.
func Equal[T comparable](a, b Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal for element types that aren't comparable with ==,
// taking an explicit equivalence function instead.
func EqualFunc[T any](a, b Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.ToList(), b.ToList()
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}
	return true
}
