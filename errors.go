package fastlist

import (
	"errors"
	"fmt"
)

// Errors raised (by panicking) on contract violations.
var (
	// ErrIndexOutOfRange is the error every *RangeError unwraps to.
	ErrIndexOutOfRange = errors.New("fastlist: index out of range")
	// ErrInvalidArgument flags arguments which may never be passed to a list operation.
	ErrInvalidArgument = errors.New("fastlist: invalid argument")
	// ErrNilPredicate is raised when a search is called with a nil predicate.
	ErrNilPredicate = fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	// ErrNilSequence is raised when a nil sequence is handed to a range operation.
	ErrNilSequence = fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	// ErrNoOrdering is raised when sorting without a comparer an element type
	// which does not implement Ordered.
	ErrNoOrdering = errors.New("fastlist: element type has no natural ordering")
)

// RangeError describes an index or an index range outside of the bounds an
// operation accepts.
type RangeError struct {
	Op    string // operation which has been called
	Index int    // start index handed to Op
	Count int    // element count handed to Op, if Ranged
	Limit int    // exclusive upper bound for Index (or Index+Count), or unbounded
	// Ranged is set for operations on a range [Index, Index+Count).
	Ranged bool
}

// unbounded is the Limit of arguments which only have to be non-negative.
const unbounded = -1

func (e *RangeError) Error() string {
	if e.Limit == unbounded {
		return fmt.Sprintf("fastlist: %s: negative argument %d", e.Op, e.Index)
	}
	if e.Ranged {
		return fmt.Sprintf("fastlist: %s: range [%d:%d] out of bounds for length %d",
			e.Op, e.Index, e.Index+e.Count, e.Limit)
	}
	return fmt.Sprintf("fastlist: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Limit)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfRange) hold for every RangeError.
func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Catch calls f and returns the contract violation f panics with, if any.
// Panics other than list contract violations are passed on unchanged.
//
//     err := fastlist.Catch(func() { l.RemoveAt(i) })
//     if errors.Is(err, fastlist.ErrIndexOutOfRange) { … }
//
func Catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && isViolation(e) {
				err = e
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

func isViolation(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNoOrdering)
}

// --- Helpers ---------------------------------------------------------------

func violation(err error) {
	tracer().Errorf("%v", err)
	panic(err)
}

func assertThat(that bool, err error) {
	if !that {
		violation(err)
	}
}

// checkIndex asserts 0 ≤ i < limit.
func checkIndex(op string, i, limit int) {
	if i < 0 || i >= limit {
		violation(&RangeError{Op: op, Index: i, Limit: limit})
	}
}

// checkRange asserts that [i, i+n) is a valid range within [0, limit).
func checkRange(op string, i, n, limit int) {
	if i < 0 || n < 0 || i > limit-n {
		violation(&RangeError{Op: op, Index: i, Count: n, Limit: limit, Ranged: true})
	}
}

func checkPredicate[T any](pred Predicate[T]) {
	assertThat(pred != nil, ErrNilPredicate)
}
