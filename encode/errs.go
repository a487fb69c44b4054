package encode

import "errors"

var (
	// ErrInvalidNode marks a tree the encoder cannot walk: a nil node, an
	// unknown node type, or an unknown scalar kind.
	ErrInvalidNode = errors.New("invalid node")
	// ErrEncoding marks text that cannot be written as UTF-8.
	ErrEncoding = errors.New("encoding error")
)
