package dict

import (
	"strconv"
	"strings"
)

// NormalizeValue canonicalizes raw user input before it is patched
// into a file. Surrounding whitespace and trailing semicolons are
// dropped, and "uniform" field values are rewritten with fixed
// one-decimal formatting so that "uniform (1 0 0)" always lands in a
// file as "uniform (1.0 0.0 0.0)". Values that are not uniform
// shorthand pass through verbatim.
//
// The fixed format truncates finer precision: "uniform 0.014" becomes
// "uniform 0.0". Callers needing more digits must not use uniform
// shorthand for the value.
func NormalizeValue(raw string) string {
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), ";"))
	if u, ok := normalizeUniform(text); ok {
		return u
	}
	return text
}

// normalizeUniform reformats a "uniform" scalar or vector value. The
// second return is false when the input is not uniform shorthand or
// its payload is not numeric, in which case the caller keeps the
// original text.
func normalizeUniform(value string) (string, bool) {
	if !strings.HasPrefix(value, "uniform") {
		return "", false
	}
	payload := strings.TrimSpace(value[len("uniform"):])
	if strings.HasPrefix(payload, "(") && strings.HasSuffix(payload, ")") && len(payload) >= 2 {
		inner := strings.TrimSpace(payload[1 : len(payload)-1])
		if inner == "" {
			return "uniform ()", true
		}
		parts := strings.Fields(inner)
		formatted := make([]string, 0, len(parts))
		for _, item := range parts {
			n, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return "", false
			}
			formatted = append(formatted, strconv.FormatFloat(n, 'f', 1, 64))
		}
		return "uniform (" + strings.Join(formatted, " ") + ")", true
	}
	n, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return "", false
	}
	return "uniform " + strconv.FormatFloat(n, 'f', 1, 64), true
}
