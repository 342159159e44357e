package casedir

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ZeroDir returns the initial-conditions directory of a case: 0 when
// present, otherwise 0.orig, otherwise the (possibly absent) 0 path.
func ZeroDir(caseDir string) string {
	zero := filepath.Join(caseDir, "0")
	if isDir(zero) {
		return zero
	}
	orig := filepath.Join(caseDir, "0.orig")
	if isDir(orig) {
		return orig
	}
	return zero
}

// ListFieldFiles returns the field file names in the case's zero
// directory, sorted. Editor droppings and dotfiles are skipped.
func ListFieldFiles(caseDir string) []string {
	entries, err := os.ReadDir(ZeroDir(caseDir))
	if err != nil {
		return nil
	}
	var fields []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
			continue
		}
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
