package store

import "context"

// OutputWriter persists a generated source file.
type OutputWriter interface {
	// Write stores content at path. The path "-" (or an empty path) writes to
	// standard output instead of a file.
	Write(ctx context.Context, path string, content string) error
}
