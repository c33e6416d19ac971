/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or nothing at all (Nothing). Lists return
them from operations which have to tell an absent element apart from an element
which happens to be the zero value, e.g. Last() on an empty list.

Clients may pattern-match on a Maybe like this:

	var v int
	switch m := l.Last().Match(); m {
	case m.Just(&v):
		fmt.Printf("last element is %d\n", v)
	case m.Nothing():
		fmt.Println("list is empty")
	}

or use the more conventional Get:

	if v, ok := l.Last().Get(); ok { … }

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x as a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// Get returns the value, if present, or the zero value for T and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault returns the value, if present, and def otherwise.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains an optional computation f with a maybe-value x, possibly
// changing the value type.
func AndThen[T, S any](x Maybe[T], f func(T) Maybe[S]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher decomposes a Maybe in a switch statement. The case expression for the
// alternative present in the Maybe evaluates to the matcher the switch is on,
// any other case expression evaluates to nil.
//
// Matchers are compared by identity, so matching works for element types which
// are not comparable, such as slices or maps.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match returns a Matcher for m. Every call creates a new one.
func (m maybe[T]) Match() Matcher[T] {
	return &match[T]{m}
}

type match[T any] struct {
	of maybe[T]
}

// Just stores the value at dest and returns the receiver, if a value is present.
func (p *match[T]) Just(dest *T) Matcher[T] {
	if !p.of.tag {
		return nil
	}
	if dest != nil {
		*dest = p.of.value
	}
	return p
}

// Nothing returns the receiver if no value is present.
func (p *match[T]) Nothing() Matcher[T] {
	if p.of.tag {
		return nil
	}
	return p
}
