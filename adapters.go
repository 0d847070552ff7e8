package pvector

// Member always declines to answer, directing callers to scan via Range
// or Reduce instead (spec.md §4.7: "member? returns 'cannot answer in
// O(1)'" — answering truthfully would require a linear scan the
// iteration adapter's contract explicitly refuses to hide behind an
// O(1)-looking call).
func (v Vector[T]) Member(T) (bool, error) {
	return false, ErrLinearScanRequired
}

// GetAndUpdate is present only for conformance with the host
// indexed-access protocol; it is not implemented and always fails with
// ErrNoSuchOperation (spec.md §4.7, §7).
func (v Vector[T]) GetAndUpdate(i int, fn func(T) T) (Vector[T], T, error) {
	var zero T
	return v, zero, ErrNoSuchOperation
}

// PopAt is present only for conformance with the host indexed-access
// protocol's arbitrary-key pop hook; it is not implemented and always
// fails with ErrNoSuchOperation. It is distinct from RemoveLast, which
// is the supported, spec'd operation for dropping the final element
// (spec.md §4.7, §7).
func (v Vector[T]) PopAt(i int) (Vector[T], T, error) {
	var zero T
	return v, zero, ErrNoSuchOperation
}
