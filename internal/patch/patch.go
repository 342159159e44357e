package patch

import "regexp"

// SetScalar rewrites the value of one keyword inside span, or inserts
// the entry when the keyword is absent. A nil span means the document
// root. The first matching `key value;` line keeps its leading
// whitespace; everything outside the rewritten range is returned
// byte-for-byte. Insertion appends `key value;` just before the end of
// the span, or at end of file for the root.
func SetScalar(text string, span *Span, key, value string) string {
	segment := text
	base := 0
	if span != nil {
		segment = text[span.Start:span.End]
		base = span.Start
	}

	pattern := regexp.MustCompile(`(?m)^(\s*)"?` + regexp.QuoteMeta(key) + `"?\s+([^;{}]+);`)
	if loc := pattern.FindStringSubmatchIndex(segment); loc != nil {
		leading := segment[loc[2]:loc[3]]
		replacement := leading + key + " " + value + ";"
		start := base + loc[0]
		end := base + loc[1]
		return text[:start] + replacement + text[end:]
	}

	insertion := "\n    " + key + " " + value + ";\n"
	if span == nil {
		return text + insertion
	}
	insertAt := span.End
	return text[:insertAt] + insertion + text[insertAt:]
}
