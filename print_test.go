package fastlist

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// --- Print buffer layout ---------------------------------------------------

// printList renders the buffer of a list, separating live elements from spare
// storage.
func printList[T any](l *List[T]) string {
	header := fmt.Sprintf("\nList(len=%d, cap=%d)\n", l.size, len(l.items))
	printer := tp.New()
	live := printer.AddBranch(fmt.Sprintf("live 0…%d", l.size-1))
	for i := 0; i < l.size; i++ {
		live.AddNode(fmt.Sprintf("%d: %v", i, l.items[i]))
	}
	spare := printer.AddBranch(fmt.Sprintf("spare %d…%d", l.size, len(l.items)-1))
	for i := l.size; i < len(l.items); i++ {
		spare.AddNode(fmt.Sprintf("%d: %v", i, l.items[i]))
	}
	return header + printer.String() + "\n"
}

// spareIsZero reports whether every slot beyond the length of l holds the zero value.
func spareIsZero[T comparable](l *List[T]) bool {
	var zero T
	for i := l.size; i < len(l.items); i++ {
		if l.items[i] != zero {
			return false
		}
	}
	return true
}
