package pvector

import (
	"errors"
	"fmt"
)

// ArgumentError reports a caller-supplied index that is out of range for
// the operation attempted, or a call to Last/RemoveLast on an empty
// vector. Its Error() text matches spec.md §4/§7's exact phrasings so
// callers (and tests) can match on message content as well as type.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func argErrGet(i, count int) error {
	return &ArgumentError{msg: fmt.Sprintf("Attempt to get index %d for vector of size %d", i, count)}
}

func argErrSet(i, count int) error {
	return &ArgumentError{msg: fmt.Sprintf("Attempt to set index %d for vector of size %d", i, count)}
}

func argErrRemoveLastEmpty() error {
	return &ArgumentError{msg: "Cannot remove_last from empty vector"}
}

func argErrLastEmpty() error {
	return &ArgumentError{msg: "last/1 called for empty vector"}
}

// ErrNoSuchOperation is returned by the mutating indexed-access adapter
// hooks (GetAndUpdate, PopAt) that exist only for interface conformance
// with the host collection protocol and are not implemented
// (spec.md §4.7, §7).
var ErrNoSuchOperation = errors.New("no such operation")

// ErrLinearScanRequired is returned by Member: the iteration adapter
// refuses to answer a membership query in O(1) rather than quietly
// perform a linear scan behind an innocuous-looking call (spec.md §4.7,
// §9).
var ErrLinearScanRequired = errors.New("cannot answer membership in O(1); scan with Range or Reduce")
