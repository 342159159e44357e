// Package casedir knows the conventional layout of an OpenFOAM case
// directory: system/ and constant/ dictionaries, time-zero field
// directories, and the polyMesh boundary file.
package casedir

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Sections groups the dictionary files of a case by their conventional
// location. Paths are absolute when the case path was absolute.
type Sections struct {
	System   []string
	Constant []string
	Zero     []string
}

// All returns every discovered file, system first, then constant,
// then time-zero fields.
func (s Sections) All() []string {
	out := make([]string, 0, len(s.System)+len(s.Constant)+len(s.Zero))
	out = append(out, s.System...)
	out = append(out, s.Constant...)
	out = append(out, s.Zero...)
	return out
}

// Discover lists candidate dictionary files in a case directory.
// Time-zero directories are those named "0", "0.orig" and the like; a
// directory whose name parses as a nonzero number, such as "0.5", is a
// result directory and excluded.
func Discover(caseDir string) Sections {
	var s Sections
	s.System = listFiles(filepath.Join(caseDir, "system"))
	s.Constant = listFiles(filepath.Join(caseDir, "constant"))

	entries, err := os.ReadDir(caseDir)
	if err != nil {
		return s
	}
	var zero []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "0") {
			continue
		}
		if v, err := strconv.ParseFloat(e.Name(), 64); err == nil && v != 0 {
			continue
		}
		zero = append(zero, listFiles(filepath.Join(caseDir, e.Name()))...)
	}
	sort.Strings(zero)
	s.Zero = zero
	return s
}

// BoundaryPath returns the conventional location of the polyMesh
// boundary file under a case directory.
func BoundaryPath(caseDir string) string {
	return filepath.Join(caseDir, "constant", "polyMesh", "boundary")
}

func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files
}
