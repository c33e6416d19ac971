package fastlist

import "golang.org/x/exp/constraints"

// Equal returns a predicate testing for equality with value.
func Equal[T comparable](value T) Predicate[T] {
	return func(x T) bool {
		return x == value
	}
}

// Not returns the negation of pred.
func Not[T any](pred Predicate[T]) Predicate[T] {
	checkPredicate(pred)
	return func(x T) bool {
		return !pred(x)
	}
}

// Ascending compares elements by their natural order.
func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Descending returns a comparer with the order of cmp reversed.
func Descending[T any](cmp Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// By returns a comparer ordering elements by a key, i.e. the composition of the
// key function with Ascending.
//
//     people.SortFunc(fastlist.By(func(p Person) string { return p.Name }))
//
func By[T any, K constraints.Ordered](key func(T) K) Comparer[T] {
	return func(a, b T) int {
		return Ascending(key(a), key(b))
	}
}
