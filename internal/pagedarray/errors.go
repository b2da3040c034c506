package pagedarray

import "errors"

// ErrOutOfRange is returned when an index or cursor range violates a
// [0, size] contract.
var ErrOutOfRange = errors.New("pagedarray: out of range")
