package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var memberNameReplacer = strings.NewReplacer("-", "_", ".", "_")

// NormalizeIdentifier maps a raw configuration key to a member name: every
// '-' and '.' becomes '_', and a leading decimal digit gets a '_' prefix.
// Other characters pass through unchanged.
//
// Two keys may normalize to the same identifier (e.g. "foo-bar" and
// "foo.bar"); such collisions are emitted as-is.
func NormalizeIdentifier(key string) string {
	name := memberNameReplacer.Replace(key)
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		name = "_" + name
	}
	return name
}

// cacheFieldName derives the private backing field of an accessor:
// "_" followed by the identifier with its first character lower-cased.
func cacheFieldName(identifier string) string {
	r, size := utf8.DecodeRuneInString(identifier)
	if size == 0 {
		return "_"
	}
	return "_" + string(unicode.ToLower(r)) + identifier[size:]
}

// lastSegment returns the part of path after the final ':'.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, ':'); i >= 0 {
		return path[i+1:]
	}
	return path
}
