package dict

import (
	"math"
	"strconv"
	"strings"
)

// Parse builds the document for an entire dictionary file. Parsing
// never fails: unplaceable tokens are skipped and whatever structure
// remains is returned. Duplicate keywords keep the first value seen.
func Parse(text string) *Dict {
	tokens := Tokenize(text)
	doc, _ := parseEntries(tokens, 0)
	return doc
}

// parseEntries consumes tokens from start until the end of the stream
// or an unmatched "}" that closes the enclosing block. It returns the
// entries collected and the index of the first unconsumed token.
func parseEntries(tokens []string, start int) (*Dict, int) {
	d := NewDict()
	i := start

	for i < len(tokens) {
		tok := tokens[i]

		if tok == "}" {
			return d, i + 1
		}
		// Stray structure at key position is recovery territory: skip
		// and resynchronize on the next plausible keyword.
		if tok == ";" || tok == "{" || tok == ")" {
			i++
			continue
		}
		if tok == "(" {
			i = skipParens(tokens, i+1)
			continue
		}

		key := stripQuotes(tok)
		i++
		if i >= len(tokens) {
			break
		}

		if tokens[i] == "{" {
			nested, next := parseEntries(tokens, i+1)
			d.put(key, nested)
			i = next
			continue
		}

		var parts []string
		for i < len(tokens) && tokens[i] != ";" {
			part := tokens[i]
			if part == "{" {
				// A brace mid-value means the value was actually a
				// block; everything gathered so far is discarded.
				nested, next := parseEntries(tokens, i+1)
				d.put(key, nested)
				i = next
				break
			}
			if part == "(" {
				content, next := collectParens(tokens, i+1)
				parts = append(parts, "("+content+")")
				i = next
				continue
			}
			if part == "}" {
				break
			}
			parts = append(parts, stripQuotes(part))
			i++
		}
		if !d.has(key) {
			d.put(key, convertScalar(strings.Join(parts, " ")))
		}
		if i < len(tokens) && tokens[i] == ";" {
			i++
		}
	}

	return d, i
}

// skipParens advances past a parenthesized group whose "(" has already
// been consumed, tracking nesting depth.
func skipParens(tokens []string, start int) int {
	depth := 1
	for i := start; i < len(tokens); i++ {
		switch tokens[i] {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(tokens)
}

// collectParens gathers the interior of a parenthesized group whose
// "(" has already been consumed, preserving nested parens verbatim.
func collectParens(tokens []string, start int) (string, int) {
	depth := 1
	var parts []string
	for i := start; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "(":
			depth++
			parts = append(parts, tok)
		case ")":
			depth--
			if depth == 0 {
				return strings.Join(parts, " "), i + 1
			}
			parts = append(parts, tok)
		default:
			parts = append(parts, stripQuotes(tok))
		}
	}
	return strings.Join(parts, " "), len(tokens)
}

// convertScalar turns joined value text into its document form. A
// bracketed run whose elements all parse as numbers becomes a List;
// anything else stays a verbatim Scalar.
func convertScalar(raw string) Value {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		body := strings.TrimSpace(s[1 : len(s)-1])
		if body == "" {
			return List{}
		}
		items := make(List, 0, 8)
		for _, part := range strings.Fields(body) {
			n, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return Scalar(s)
			}
			items = append(items, Scalar(formatNumber(n)))
		}
		return items
	}
	return Scalar(s)
}

// formatNumber renders integral floats without a decimal point, so a
// dimension exponent parsed as -2.0 prints as "-2".
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
