//go:build !fastlist_nochecks

package fastlist

// checks enables range checking of indices and counts handed to list operations.
const checks = true
