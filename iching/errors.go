package iching

import "errors"

var (
	// ErrUnknownMethod is returned by Cast for an unrecognized
	// divination method.
	ErrUnknownMethod = errors.New("iching: unknown divination method")

	// ErrHexagramRange is returned by Lookup for numbers outside
	// [1, 64].
	ErrHexagramRange = errors.New("iching: hexagram number out of range")
)
