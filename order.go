package fastlist

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Ordered is implemented by element types with a natural ordering, used when
// sorting without an explicit comparer. Compare follows the conventions of Comparer.
type Ordered[T any] interface {
	Compare(other T) int
}

// Reverse reverses the order of the elements of l.
func (l *List[T]) Reverse() {
	l.ReverseRange(0, l.size)
}

// ReverseRange reverses the order of n elements starting at index i. The element
// previously located at position j ∈ [i, i+n) will be located at i+(i+n-j-1).
func (l *List[T]) ReverseRange(i, n int) {
	if checks {
		checkRange("ReverseRange", i, n, l.size)
	}
	for lo, hi := i, i+n-1; lo < hi; lo, hi = lo+1, hi-1 {
		l.items[lo], l.items[hi] = l.items[hi], l.items[lo]
	}
}

// Sort sorts the elements of l in ascending natural order. The sort is not
// guaranteed to be stable.
func Sort[T constraints.Ordered](l *List[T]) {
	slices.Sort(l.items[:l.size])
}

// SortFunc sorts the elements of l by cmp. With cmp == nil, elements are sorted
// by their natural ordering, which requires T to implement Ordered.
func (l *List[T]) SortFunc(cmp Comparer[T]) {
	l.SortRange(0, l.size, cmp)
}

// SortRange sorts n elements starting at index i by cmp. With cmp == nil,
// elements are sorted by their natural ordering, which requires T to implement
// Ordered. The sort is not guaranteed to be stable.
func (l *List[T]) SortRange(i, n int, cmp Comparer[T]) {
	if checks {
		checkRange("SortRange", i, n, l.size)
	}
	if n < 2 {
		return
	}
	if cmp == nil {
		cmp = naturalOrder(l.items[i])
	}
	slices.SortFunc(l.items[i:i+n], func(a, b T) bool {
		return cmp(a, b) < 0
	})
}

// naturalOrder returns a comparer delegating to Ordered.Compare. sample decides
// early whether the element type supports it; for interface element types every
// operand is checked again, as implementations may differ.
func naturalOrder[T any](sample T) Comparer[T] {
	if _, ok := any(sample).(Ordered[T]); !ok {
		violation(ErrNoOrdering)
	}
	return func(a, b T) int {
		o, ok := any(a).(Ordered[T])
		if !ok {
			violation(ErrNoOrdering)
		}
		if _, ok = any(b).(Ordered[T]); !ok {
			violation(ErrNoOrdering)
		}
		return o.Compare(b)
	}
}
