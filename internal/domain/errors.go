package domain

import "errors"

// Structural operation errors. Each one means the operation was
// rejected and the input document is unchanged.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("duplicate category name")
	ErrIndexOutOfRange  = errors.New("service index out of range")
	ErrBadPermutation   = errors.New("malformed permutation")
)
