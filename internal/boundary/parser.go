// Package boundary reads and edits polyMesh boundary files and the
// boundaryField blocks of field files.
//
// The boundary file is not parsed as a dictionary: it is a count line
// followed by a parenthesized list of patch blocks, and the list may
// repeat a name. A line-oriented scan keeps the order and the
// duplicates that a keyword map would lose.
package boundary

import (
	"regexp"
	"strings"
)

var (
	patchStartRE = regexp.MustCompile(`^"?([A-Za-z0-9_./-]+)"?\s*\{`)
	patchNameRE  = regexp.MustCompile(`^"?[A-Za-z0-9_./-]+"?$`)
)

// ParseText scans boundary file text and returns the patch names in
// declaration order plus a map from patch name to its type entry.
// Wildcard names like ".*" fall outside the accepted name alphabet and
// are skipped rather than reported as patches. Any input yields a
// result; garbage lines are ignored.
func ParseText(text string) ([]string, map[string]string) {
	patches := []string{}
	types := map[string]string{}

	inEntries := false
	current := ""
	inPatch := false
	braceDepth := 0
	pending := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(stripLineComment(raw))
		if line == "" || strings.HasPrefix(line, "FoamFile") {
			continue
		}
		if !inEntries {
			// Everything before the opening paren, including the
			// declared patch count, is ignored.
			if line == "(" || strings.HasSuffix(line, "(") {
				inEntries = true
			}
			continue
		}
		if strings.HasPrefix(line, ")") {
			break
		}

		if !inPatch {
			if pending != "" && strings.HasPrefix(line, "{") {
				current = pending
				pending = ""
				inPatch = true
				patches = append(patches, current)
				braceDepth = 1
				continue
			}
			if m := patchStartRE.FindStringSubmatch(line); m != nil {
				current = m[1]
				inPatch = true
				patches = append(patches, current)
				if t, ok := inlineType(line); ok {
					types[current] = t
				}
				braceDepth = strings.Count(line, "{") - strings.Count(line, "}")
				if braceDepth <= 0 {
					inPatch = false
					braceDepth = 0
				}
				continue
			}
			if patchNameRE.MatchString(line) {
				pending = strings.Trim(line, `"`)
			}
			continue
		}

		if t, ok := entryType(line); ok {
			types[current] = t
		}
		braceDepth += strings.Count(line, "{")
		braceDepth -= strings.Count(line, "}")
		if braceDepth <= 0 {
			inPatch = false
			braceDepth = 0
		}
	}

	return patches, types
}

// inlineType pulls the type value out of a one-line patch block like
// `inlet { type patch; nFaces 4; }`.
func inlineType(line string) (string, bool) {
	if !strings.Contains(line, "type") || !strings.Contains(line, ";") {
		return "", false
	}
	tokens := strings.Fields(strings.ReplaceAll(line, ";", " "))
	for i, tok := range tokens {
		if tok == "type" && i+1 < len(tokens) {
			return tokens[i+1], true
		}
	}
	return "", false
}

// entryType matches a `type value;` line inside a patch block.
func entryType(line string) (string, bool) {
	if !strings.Contains(line, "type") || !strings.Contains(line, ";") {
		return "", false
	}
	tokens := strings.Fields(strings.ReplaceAll(line, ";", " "))
	if len(tokens) >= 2 && tokens[0] == "type" {
		return tokens[1], true
	}
	return "", false
}

// stripLineComment drops a trailing // comment from one line.
func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}
