package pattern

import "errors"

var (
	// ErrInvalidSize indicates a non-positive frame width or height.
	ErrInvalidSize = errors.New("pattern: invalid frame size")

	// ErrInvalidRange indicates a parameter range with Min > Max.
	ErrInvalidRange = errors.New("pattern: invalid range")
)
