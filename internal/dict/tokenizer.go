package dict

import (
	"regexp"
	"strings"
)

var (
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRE  = regexp.MustCompile(`//[^\n]*`)

	// A token is a quoted string, a single structural character, or a
	// maximal run of anything else. Brackets are not structural, so a
	// dimension set like [0 1 -2 0 0 0 0] tokenizes as "[0" ... "0]".
	tokenRE = regexp.MustCompile(`"[^"]*"|[{}();]|[^\s{}();]+`)
)

// Tokenize splits dictionary text into a flat token stream. Block and
// line comments are stripped first, quoted strings are kept as single
// tokens, and the braces, parens and semicolons that carry structure
// come through as one-character tokens. Any input, including garbage,
// produces a (possibly empty) token sequence.
func Tokenize(text string) []string {
	cleaned := blockCommentRE.ReplaceAllString(text, "")
	cleaned = lineCommentRE.ReplaceAllString(cleaned, "")
	return tokenRE.FindAllString(cleaned, -1)
}

// stripQuotes removes one set of surrounding double quotes when both
// are present, e.g. for quoted keywords like ".*".
func stripQuotes(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return tok[1 : len(tok)-1]
	}
	return tok
}
