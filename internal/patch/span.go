// Package patch performs surgical edits on raw dictionary text.
//
// Nothing here reserializes parsed structure. Every operation works on
// byte offsets into the original text, so comments, blank lines and
// formatting outside the touched entry survive exactly as written.
package patch

import "regexp"

// Span marks the interior of a brace block as half-open byte offsets
// into the text it was resolved against: Start sits just past the
// opening brace, End on the closing brace.
type Span struct {
	Start int
	End   int
}

// LocateBlock resolves a key path to the interior of its block by
// scanning raw text, narrowing one level per path segment. The second
// return is false when any segment is missing or its opening brace is
// never balanced. An empty path spans the whole text.
func LocateBlock(text string, path []string) (Span, bool) {
	span := Span{Start: 0, End: len(text)}
	for _, key := range path {
		inner, ok := findNamedBlock(text, key, span)
		if !ok {
			return Span{}, false
		}
		span = inner
	}
	return span, true
}

// findNamedBlock finds `key {` inside within, where the keyword may be
// quoted and must sit at a line start or after whitespace. It returns
// the interior span of the matched block.
func findNamedBlock(text, key string, within Span) (Span, bool) {
	segment := text[within.Start:within.End]
	pattern := regexp.MustCompile(`(?m)(^|\s)"?` + regexp.QuoteMeta(key) + `"?\s*\{`)
	loc := pattern.FindStringIndex(segment)
	if loc == nil {
		return Span{}, false
	}
	openBrace := within.Start + loc[1] - 1
	closeBrace, ok := matchBrace(text, openBrace)
	if !ok {
		return Span{}, false
	}
	return Span{Start: openBrace + 1, End: closeBrace}, true
}

// matchBrace scans forward from an opening brace to its balancing
// close. Braces inside comments or strings are not special-cased; the
// scan is a plain depth count, which is what keeps spans cheap.
func matchBrace(text string, openBrace int) (int, bool) {
	depth := 0
	for i := openBrace; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
