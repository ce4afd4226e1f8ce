package interfaces

import "errors"

// Conditional-write outcomes reported by repositories. Plain "not found" is still
// signalled with a zero-value entity (empty ID).
var (
	ErrAlreadyExists   = errors.New("item already exists")
	ErrVersionConflict = errors.New("item was modified concurrently")
)
