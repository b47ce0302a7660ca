package list

import "errors"

// Sentinel errors returned by position lookups.
var (
	// ErrEmptyList is returned when an operation requires at least one
	// element but the list is empty.
	ErrEmptyList = errors.New("list: operation on empty list")

	// ErrIndexOutOfRange is returned when a requested index is outside
	// [0, Length()-1]. Negative indices are never valid; there is no
	// from-the-end wraparound.
	ErrIndexOutOfRange = errors.New("list: index out of range")
)
