// Package keypath splits dotted dictionary entry paths into their segments.
//
// Entry paths address nested dictionary entries the way foamDictionary
// does, e.g. "boundaryField.inlet.type". Splitting is lenient: empty
// segments are dropped rather than rejected, so a stray leading or
// doubled dot never makes a path unresolvable on its own.
package keypath

import "strings"

// Split breaks a dotted entry path into segments, dropping empties.
// "a..b" and ".a.b" both resolve to ["a" "b"]; an empty or dot-only
// path yields nil.
func Split(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, ".") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// Leaf returns the final segment of a dotted path, or "" when the path
// has no segments.
func Leaf(path string) string {
	parts := Split(path)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
