package dict

import "strings"

// EntryComments extracts the comment lines sitting directly above the
// first line that mentions key. This is a heuristic, not a parse: the
// match is a case-insensitive substring test on the leaf segment of
// the key, and collection walks upward over consecutive lines starting
// with "//", "/*" or "*". It is good enough for annotating entries in
// hand-maintained case files.
func EntryComments(text, key string) []string {
	var comments []string

	leaf := key
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		leaf = key[idx+1:]
	}
	needle := strings.ToLower(leaf)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			stripped := strings.TrimLeft(lines[j], " \t\r\f\v")
			if strings.HasPrefix(stripped, "//") ||
				strings.HasPrefix(stripped, "/*") ||
				strings.HasPrefix(stripped, "*") {
				comments = append([]string{stripped}, comments...)
				continue
			}
			break
		}
		break
	}

	return comments
}
