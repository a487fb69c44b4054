package decode

import "errors"

var (
	ErrDecode      = errors.New("decode error")
	ErrUnsupported = errors.New("unsupported value")
)
