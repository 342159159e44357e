package boundary

import (
	"regexp"

	"github.com/foamworks/foamctl/internal/patch"
)

// RenamePatch rewrites every declaration of patch old to new in
// boundary file text. Only the declaration line is touched, so the
// block body keeps its exact bytes. The second return is false when no
// declaration matched.
func RenamePatch(text, old, new string) (string, bool) {
	pattern := regexp.MustCompile(`(?m)^(\s*)` + regexp.QuoteMeta(old) + `(\s*\{)`)
	return substituteName(pattern, text, new)
}

// RenameFieldPatch renames a patch block inside the boundaryField of
// field file text. The declaration may be quoted. The second return is
// false when the file has no boundaryField or the patch is absent.
func RenameFieldPatch(text, old, new string) (string, bool) {
	span, ok := patch.LocateBlock(text, []string{"boundaryField"})
	if !ok {
		return "", false
	}
	inner := text[span.Start:span.End]
	pattern := regexp.MustCompile(`(?m)^(\s*)"?` + regexp.QuoteMeta(old) + `"?(\s*\{)`)
	updatedInner, ok := substituteName(pattern, inner, new)
	if !ok {
		return "", false
	}
	return text[:span.Start] + updatedInner + text[span.End:], true
}

// substituteName replaces the name between the two captured groups in
// every match, reporting whether anything matched.
func substituteName(pattern *regexp.Regexp, text, new string) (string, bool) {
	if pattern.FindStringIndex(text) == nil {
		return "", false
	}
	updated := pattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := pattern.FindStringSubmatch(m)
		return sub[1] + new + sub[2]
	})
	return updated, true
}
