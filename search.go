package fastlist

import (
	"github.com/npillmayer/fastlist/maybe"
)

// IndexOf returns the index of the first element of l equal to value, or NotFound.
func IndexOf[T comparable](l *List[T], value T) int {
	for i := 0; i < l.size; i++ {
		if l.items[i] == value {
			return i
		}
	}
	return NotFound
}

// Contains reports whether value is an element of l.
func Contains[T comparable](l *List[T], value T) bool {
	return IndexOf(l, value) != NotFound
}

// IndexFunc returns the index of the first element satisfying pred, or NotFound.
func (l *List[T]) IndexFunc(pred Predicate[T]) int {
	checkPredicate(pred)
	for i := 0; i < l.size; i++ {
		if pred(l.items[i]) {
			return i
		}
	}
	return NotFound
}

// Find returns the first element satisfying pred. If no element matches, the zero
// value of T is returned; use Lookup to tell both cases apart.
func (l *List[T]) Find(pred Predicate[T]) T {
	if i := l.IndexFunc(pred); i != NotFound {
		return l.items[i]
	}
	var zero T
	return zero
}

// Lookup returns the first element satisfying pred, if any.
func (l *List[T]) Lookup(pred Predicate[T]) maybe.Maybe[T] {
	if i := l.IndexFunc(pred); i != NotFound {
		return maybe.Just(l.items[i])
	}
	return maybe.Nothing[T]()
}

// Count returns the number of elements satisfying pred.
func (l *List[T]) Count(pred Predicate[T]) int {
	checkPredicate(pred)
	cnt := 0
	for i := 0; i < l.size; i++ {
		if pred(l.items[i]) {
			cnt++
		}
	}
	return cnt
}

// All reports whether every element satisfies pred. All is true for an empty list.
func (l *List[T]) All(pred Predicate[T]) bool {
	return l.Count(pred) == l.size
}
