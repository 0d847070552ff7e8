package pvector

import (
	"fmt"
	"strings"
)

// Inspect renders v as "#PersistentVector<count: N, [e0, e1, ...]>",
// showing at most limit elements (a negative limit means unlimited) and
// appending a trailing "..." marker when truncated (spec.md §4.7, §8).
func (v Vector[T]) Inspect(limit int) string {
	v = v.normalize()

	var b strings.Builder
	fmt.Fprintf(&b, "#PersistentVector<count: %d, [", v.cnt)

	shown := 0
	truncated := false
	v.Range(func(i int, x T) bool {
		if limit >= 0 && shown >= limit {
			truncated = true
			return false
		}
		if shown > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
		shown++
		return true
	})

	if truncated {
		if shown > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString("]>")
	return b.String()
}

// String implements fmt.Stringer by delegating to an unlimited Inspect,
// so %v/%s formatting of a Vector reads the same way Inspect does.
func (v Vector[T]) String() string {
	return v.Inspect(-1)
}
