package codegen

import "errors"

var (
	// ErrUnsupportedValueKind is returned when the value type inferencer
	// receives something other than a bool, number or string.
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
	// ErrInvalidPattern is returned when a filter expression does not compile.
	ErrInvalidPattern = errors.New("invalid path pattern")
)
