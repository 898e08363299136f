package document

import "errors"

// ErrInvalidDocument is returned when the input is not a single well-formed
// JSON value.
var ErrInvalidDocument = errors.New("invalid json document")
