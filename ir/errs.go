package ir

import "errors"

var (
	// ErrWrongType is the panic value (wrapped) for container operations
	// applied to a node of another type.
	ErrWrongType = errors.New("wrong node type")
)
