package fastlist

// Iterator produces the elements of a sequence one at a time.
//
//     it := seq.Iterate()
//     for it.Next() {
//         fmt.Println(it.Value())
//     }
//
type Iterator[T any] interface {
	Next() bool // advance to the next element, false if exhausted
	Value() T   // element the iterator currently rests on
}

// Sequence is a source of elements of unknown count.
type Sequence[T any] interface {
	Iterate() Iterator[T]
}

// Collection is a sequence with a known number of elements, which it can copy out
// in bulk. CopyTo must copy Len() elements into dst, which is sized to hold them.
type Collection[T any] interface {
	Sequence[T]
	Len() int
	CopyTo(dst []T) int
}

// Predicate is a boolean test on elements.
type Predicate[T any] func(T) bool

// Comparer defines an ordering of elements, returning a negative number for a < b,
// 0 for a == b and a positive number for a > b.
type Comparer[T any] func(a, b T) int

// --- Slices ----------------------------------------------------------------

type sliceCollection[T any] []T

// Slice wraps a Go slice as a collection. Elements are not copied until the
// collection is consumed.
func Slice[T any](xs []T) Collection[T] {
	return sliceCollection[T](xs)
}

func (s sliceCollection[T]) Len() int {
	return len(s)
}

func (s sliceCollection[T]) CopyTo(dst []T) int {
	return copy(dst, s)
}

func (s sliceCollection[T]) Iterate() Iterator[T] {
	return &sliceIterator[T]{items: s, i: -1}
}

type sliceIterator[T any] struct {
	items []T
	i     int
}

func (it *sliceIterator[T]) Next() bool {
	if it.i+1 >= len(it.items) {
		it.i = len(it.items)
		return false
	}
	it.i++
	return true
}

func (it *sliceIterator[T]) Value() T {
	if it.i < 0 || it.i >= len(it.items) {
		var zero T
		return zero
	}
	return it.items[it.i]
}

// --- Generators ------------------------------------------------------------

type generator[T any] func() (T, bool)

// Generate wraps a producer function as a sequence of unknown count. next is
// called until it returns false. Every iterator of the sequence calls the same
// function, i.e. a second iteration continues where the first one stopped.
func Generate[T any](next func() (T, bool)) Sequence[T] {
	return generator[T](next)
}

func (g generator[T]) Iterate() Iterator[T] {
	return &generatorIterator[T]{next: g}
}

type generatorIterator[T any] struct {
	next generator[T]
	v    T
	done bool
}

func (it *generatorIterator[T]) Next() bool {
	if it.done {
		return false
	}
	var ok bool
	if it.v, ok = it.next(); !ok {
		var zero T
		it.v, it.done = zero, true
	}
	return ok
}

func (it *generatorIterator[T]) Value() T {
	return it.v
}

// --- List enumeration ------------------------------------------------------

// Iterate returns a fresh iterator over l. The iterator does not take a snapshot:
// at every step it re-reads the current length and element of l. Modifying l during
// an iteration is safe in terms of memory, but it is unspecified which elements are
// visited afterwards.
func (l *List[T]) Iterate() Iterator[T] {
	return &listIterator[T]{l: l, i: -1}
}

type listIterator[T any] struct {
	l *List[T]
	i int
	v T
}

func (it *listIterator[T]) Next() bool {
	if it.i+1 >= it.l.size {
		var zero T
		it.v = zero
		return false
	}
	it.i++
	it.v = it.l.items[it.i]
	return true
}

func (it *listIterator[T]) Value() T {
	return it.v
}

// Each calls f for every element of l, in order. As with Iterate, length and
// elements are re-read at every step.
func (l *List[T]) Each(f func(i int, value T)) {
	if f == nil {
		violation(ErrInvalidArgument)
	}
	for i := 0; i < l.size; i++ {
		f(i, l.items[i])
	}
}

// CopyTo copies the elements of l to dst and returns the number of elements copied.
// Together with Len and Iterate this makes a list a Collection.
func (l *List[T]) CopyTo(dst []T) int {
	return copy(dst, l.items[:l.size])
}

var _ Collection[int] = &List[int]{}
var _ Collection[int] = Slice([]int{})
