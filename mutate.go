package fastlist

import (
	"github.com/npillmayer/fastlist/maybe"
)

// Add appends value to the end of l, growing the buffer if necessary.
func (l *List[T]) Add(value T) {
	if l.size == len(l.items) {
		l.ensureCapacity(l.size + 1)
	}
	l.items[l.size] = value
	l.size++
}

// Append adds all of xs to the end of l, growing the buffer at most once.
func (l *List[T]) Append(xs ...T) {
	if len(xs) == 0 {
		return
	}
	l.ensureCapacity(l.size + len(xs))
	copy(l.items[l.size:], xs)
	l.size += len(xs)
}

// Insert inserts value at index i, with 0 ≤ i ≤ Len(). Elements at positions ≥ i
// move up by one.
func (l *List[T]) Insert(i int, value T) {
	if checks {
		checkIndex("Insert", i, l.size+1)
	}
	if l.size == len(l.items) {
		l.ensureCapacity(l.size + 1)
	}
	if i < l.size {
		copy(l.items[i+1:l.size+1], l.items[i:l.size])
	}
	l.items[i] = value
	l.size++
}

// AddRange appends all elements of seq to the end of l.
func (l *List[T]) AddRange(seq Sequence[T]) {
	l.InsertRange(l.size, seq)
}

// InsertRange inserts the elements of seq at index i, with 0 ≤ i ≤ Len().
//
// If seq is a Collection, the buffer grows at most once and the elements are
// copied in bulk. A list may be inserted into itself:
//
//     l := fastlist.Of(1, 2, 3)
//     l.InsertRange(1, l)      // [1 1 2 3 2 3]
//
// Sequences of unknown count are inserted element by element.
func (l *List[T]) InsertRange(i int, seq Sequence[T]) {
	if checks {
		checkIndex("InsertRange", i, l.size+1)
	}
	assertThat(seq != nil, ErrNilSequence)
	c, ok := seq.(Collection[T])
	if !ok {
		it := seq.Iterate()
		for it.Next() {
			l.Insert(i, it.Value())
			i++
		}
		return
	}
	k := c.Len()
	if k <= 0 {
		return
	}
	l.ensureCapacity(l.size + k)
	if i < l.size { // open a gap of k slots at i
		copy(l.items[i+k:l.size+k], l.items[i:l.size])
	}
	if self, ok := c.(*List[T]); ok && self == l {
		// k == l.size; the tail [i, size) now lives at [i+k, size+k)
		copy(l.items[i:2*i], l.items[:i])
		copy(l.items[2*i:i+l.size], l.items[i+k:l.size+k])
	} else {
		c.CopyTo(l.items[i : i+k])
	}
	l.size += k
}

// Remove removes the first occurrence of value from l. It returns false if value is
// not an element of l.
func Remove[T comparable](l *List[T], value T) bool {
	if i := IndexOf(l, value); i != NotFound {
		l.RemoveAt(i)
		return true
	}
	return false
}

// RemoveFunc removes the first element of l satisfying pred. It returns false if
// no element matches.
func (l *List[T]) RemoveFunc(pred Predicate[T]) bool {
	if i := l.IndexFunc(pred); i != NotFound {
		l.RemoveAt(i)
		return true
	}
	return false
}

// RemoveAt removes the element at index i, with 0 ≤ i < Len(). Elements at
// positions > i move down by one.
func (l *List[T]) RemoveAt(i int) {
	if checks {
		checkIndex("RemoveAt", i, l.size)
	}
	l.size--
	if i < l.size {
		copy(l.items[i:l.size], l.items[i+1:l.size+1])
	}
	var zero T
	l.items[l.size] = zero
}

// RemoveRange removes n elements starting at index i. [i, i+n) must lie within
// [0, Len()).
func (l *List[T]) RemoveRange(i, n int) {
	if checks {
		checkRange("RemoveRange", i, n, l.size)
	}
	if n == 0 {
		return
	}
	old := l.size
	l.size -= n
	if i < l.size {
		copy(l.items[i:l.size], l.items[i+n:old])
	}
	clearSlots(l.items[l.size:old])
}

// Pop removes the last element of l and returns it, if l is not empty.
func (l *List[T]) Pop() maybe.Maybe[T] {
	if l.size == 0 {
		return maybe.Nothing[T]()
	}
	value := l.items[l.size-1]
	l.RemoveAt(l.size - 1)
	return maybe.Just(value)
}

// Clear removes all elements from l. The capacity of l is left unchanged.
func (l *List[T]) Clear() {
	if l.size > 0 {
		clearSlots(l.items[:l.size])
		l.size = 0
	}
}

// clearSlots resets a range of buffer slots to the zero value, letting the
// garbage collector reclaim whatever they referenced.
func clearSlots[T any](slots []T) {
	var zero T
	for i := range slots {
		slots[i] = zero
	}
}
