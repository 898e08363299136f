// Package utils provides general-purpose helper utilities
// used across different parts of configgen: context keys, run identifiers
// and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key used to store the identifier of a generation run in
// the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.RunIDCtxKey, runID)
var RunIDCtxKey = contextKey("runID")

// GetRunIDFromContext retrieves the run identifier from the context.
//
// Returns the run ID and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing, empty or has an unexpected type
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok && runID != ""
}
