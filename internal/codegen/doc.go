// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codegen turns configuration documents into C# source that exposes
// typed, lazily cached accessors mirroring the document shape.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// never executes or type-checks the text it produces. Generation is
// all-or-nothing; any error discards the output.
//
// Paths are colon-delimited (Module:Section:Key) and are used both for
// filter matching and as the runtime lookup key embedded in the output.
// Filter expressions use Go regexp (RE2) syntax with unanchored,
// case-sensitive, leftmost-first matching.
package codegen
