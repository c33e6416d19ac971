/*
Package fastlist implements a lean, growable array: a contiguous buffer of
elements together with a logical length, for use-cases similar to Go slices
where the program wants list-style operations (insert, remove, range
operations, in-place reverse and sort) without re-slicing by hand.

A List grows its buffer by doubling, starting at DefaultCapacity elements,
which makes appending amortized O(1). Capacity only shrinks on explicit request
(SetCap, TrimExcess). Storage beyond the logical length is cleared whenever
elements are removed, so that references held by removed elements may be
garbage collected.

	l := fastlist.New[int]()
	l.Add(1)
	l.Add(2)
	l.Insert(1, 7)                          // [1 7 2]
	l.AddRange(fastlist.Slice([]int{9, 9})) // [1 7 2 9 9]
	l.RemoveRange(1, 2)                     // [1 9 9]

Contract violations (an index out of range, a nil predicate) panic with an
error value, as Go slices do. Callers preferring error returns may wrap calls
into Catch. Compiling with build tag `fastlist_nochecks` removes the list's
own range checks; the Go runtime still guards the backing buffer, so an
unchecked access may read stale storage but never memory outside the buffer.

Enumeration is not versioned: modifying a list while iterating over it is
allowed, but which elements are visited afterwards is unspecified.

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fastlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fastlist'.
func tracer() tracing.Trace {
	return tracing.Select("fastlist")
}
