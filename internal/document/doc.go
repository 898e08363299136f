// Package document parses JSON configuration documents into [models.Node]
// trees.
//
// Unlike decoding into map[string]any, the parser keeps object members in the
// order they appear in the source and keeps number literals verbatim, because
// both the order and the exact numeric text are observable in generated code.
package document
