package fastlist

import (
	"fmt"

	"github.com/npillmayer/fastlist/maybe"
)

// DefaultCapacity is the size of the first buffer a list allocates when growing
// from zero capacity.
const DefaultCapacity = 8

// NotFound is returned from index searches which did not find a matching element.
const NotFound = -1

// List is a contiguous, growable sequence of elements of type T.
// An empty instance is usable as an empty list, i.e. this is legal:
//
//     var l fastlist.List[string]
//     l.Add("Galaxy")
//
// A list exclusively owns its buffer; no operation hands out an alias of it.
type List[T any] struct {
	props
	items []T // backing buffer; len(items) is the capacity
	size  int // number of live elements, 0 ≤ size ≤ len(items)
}

type props struct {
	initial  int // capacity to allocate at creation time
	growFrom int // first capacity when growing from zero; 0 means DefaultCapacity
}

func (p props) firstCapacity() int {
	if p.growFrom <= 0 {
		return DefaultCapacity
	}
	return p.growFrom
}

// Option is a type to help initializing lists at creation time.
type Option struct {
	config func(props) props
}

// Capacity is an option to pre-allocate a buffer of n elements.
// Negative values are treated as 0.
//
// Use it like this:
//
//     l := fastlist.New[int](fastlist.Capacity(1024))
//
func Capacity(n int) Option {
	return Option{config: func(p props) props {
		if n < 0 {
			n = 0
		}
		p.initial = n
		return p
	}}
}

// GrowFrom is an option to set the capacity a list allocates when it has to grow
// from an empty buffer. Values < 1 select DefaultCapacity.
func GrowFrom(n int) Option {
	return Option{config: func(p props) props {
		if n < 1 {
			n = 0
		}
		p.growFrom = n
		return p
	}}
}

// New creates an empty list. Without options, no buffer is allocated until the
// first element is added.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{}
	for _, option := range opts {
		l.props = option.config(l.props)
	}
	if l.initial > 0 {
		l.SetCap(l.initial)
	}
	return l
}

// WithCapacity creates an empty list with a buffer for n elements. n must not be negative.
func WithCapacity[T any](n int) *List[T] {
	l := New[T]()
	l.SetCap(n)
	return l
}

// From creates a list and adds every element of seq, in iteration order.
// The element type cannot be inferred from a Collection argument, so spell it out:
//
//     l := fastlist.From[int](fastlist.Slice(xs))
//
func From[T any](seq Sequence[T], opts ...Option) *List[T] {
	assertThat(seq != nil, ErrNilSequence)
	l := New[T](opts...)
	it := seq.Iterate()
	for it.Next() {
		l.Add(it.Value())
	}
	return l
}

// Of creates a list from the given elements, adding them one by one.
func Of[T any](xs ...T) *List[T] {
	return From[T](Slice(xs))
}

// --- Length and capacity ---------------------------------------------------

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.size
}

// SetLen sets the number of elements in l to n. If n exceeds the capacity of l,
// the capacity is set to exactly n.
//
// Use with care: elements in a newly exposed range [Len(), n) are whatever the
// buffer holds at these positions. They are not guaranteed to be zero values,
// as shrinking with SetLen does not clear storage.
func (l *List[T]) SetLen(n int) {
	if checks && n < 0 {
		violation(&RangeError{Op: "SetLen", Index: n, Limit: unbounded})
	}
	if n > len(l.items) {
		l.SetCap(n)
	}
	l.size = n
}

// Cap returns the number of elements l can hold without re-allocating.
func (l *List[T]) Cap() int {
	return len(l.items)
}

// SetCap re-allocates the buffer of l to hold exactly n elements and copies the
// live elements over. A capacity below Len() truncates the list to n elements;
// this is not an error. SetCap(0) releases the buffer.
func (l *List[T]) SetCap(n int) {
	if checks && n < 0 {
		violation(&RangeError{Op: "SetCap", Index: n, Limit: unbounded})
	}
	if n != len(l.items) {
		tracer().Debugf("list capacity %d → %d", len(l.items), n)
		if n > 0 {
			buf := make([]T, n)
			copy(buf, l.items[:l.size]) // copies min(size, n)
			l.items = buf
		} else {
			l.items = nil
		}
	}
	if n < l.size {
		l.size = n
	}
}

// TrimExcess sets the capacity of l to its length.
func (l *List[T]) TrimExcess() {
	l.SetCap(l.size)
}

// ensureCapacity grows the buffer to hold at least minimum elements. Capacity is doubled,
// or set to minimum if doubling is not enough.
func (l *List[T]) ensureCapacity(minimum int) {
	if len(l.items) >= minimum {
		return
	}
	c := 2 * len(l.items)
	if c == 0 {
		c = l.firstCapacity()
	}
	if c < minimum {
		c = minimum
	}
	l.SetCap(c)
}

// --- Element access --------------------------------------------------------

// At returns the element at index i, with 0 ≤ i < Len().
func (l *List[T]) At(i int) T {
	if checks {
		checkIndex("At", i, l.size)
	}
	return l.items[i]
}

// Set replaces the element at index i, with 0 ≤ i < Len().
func (l *List[T]) Set(i int, value T) {
	if checks {
		checkIndex("Set", i, l.size)
	}
	l.items[i] = value
}

// AtUnchecked returns the element at index i without checking i against the
// length of l. Meant for hot paths where the caller has established the bounds.
// Reading in [Len(), Cap()) returns unspecified values; i ≥ Cap() panics.
func (l *List[T]) AtUnchecked(i int) T {
	return l.items[i]
}

// SetUnchecked replaces the element at index i without checking i against the
// length of l. Writes in [Len(), Cap()) are not visible through the list.
func (l *List[T]) SetUnchecked(i int, value T) {
	l.items[i] = value
}

// First returns the first element of l, if any.
func (l *List[T]) First() maybe.Maybe[T] {
	if l.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.items[0])
}

// Last returns the last element of l, if any.
func (l *List[T]) Last() maybe.Maybe[T] {
	if l.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.items[l.size-1])
}

// ToArray returns a copy of the elements of l.
func (l *List[T]) ToArray() []T {
	r := make([]T, l.size)
	copy(r, l.items[:l.size])
	return r
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.items[:l.size])
}
