package store

import "errors"

// Sentinel errors returned by [OutputWriter] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrCreatingOutputDir is returned when the parent directory of the
	// output file cannot be created.
	ErrCreatingOutputDir = errors.New("error creating output directory")

	// ErrWritingOutput is returned when the generated content cannot be
	// written to its temporary file or to stdout.
	ErrWritingOutput = errors.New("error writing output")

	// ErrReplacingOutput is returned when the temporary file cannot be moved
	// over the target path.
	ErrReplacingOutput = errors.New("error replacing output file")
)
