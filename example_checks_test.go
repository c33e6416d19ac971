//go:build !fastlist_nochecks

package fastlist_test

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fastlist"
)

func ExampleCatch() {
	l := fastlist.Of(1, 2, 3)
	err := fastlist.Catch(func() {
		l.RemoveAt(3)
	})
	fmt.Println(errors.Is(err, fastlist.ErrIndexOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// fastlist: RemoveAt: index 3 out of range [0:3]
}
