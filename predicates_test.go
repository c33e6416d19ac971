package fastlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	is3 := Equal(3)
	assert.True(t, is3(3))
	assert.False(t, is3(4))
	assert.True(t, Not(is3)(4))
	assert.ErrorIs(t, Catch(func() { Not[int](nil) }), ErrNilPredicate)
}

func TestComparers(t *testing.T) {
	assert.Equal(t, -1, Ascending(1, 2))
	assert.Equal(t, 0, Ascending("a", "a"))
	assert.Equal(t, 1, Descending[int](Ascending[int])(1, 2))
	byLen := By(func(s string) int { return len(s) })
	assert.Less(t, byLen("ab", "abc"), 0)
	assert.Zero(t, byLen("ab", "xy"))
}
