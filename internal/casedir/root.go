package casedir

import (
	"os"
	"path/filepath"
)

// FindCaseRoot walks up from a file toward the filesystem root looking
// for the ancestor that holds constant/polyMesh/boundary. The second
// return is false when no ancestor qualifies.
func FindCaseRoot(path string) (string, bool) {
	return findAncestor(path, func(dir string) bool {
		return exists(BoundaryPath(dir))
	})
}

// FindControlRoot walks up from a file looking for the ancestor that
// holds system/controlDict. Meshless cases still have a controlDict,
// so this is the broader of the two root tests.
func FindControlRoot(path string) (string, bool) {
	return findAncestor(path, func(dir string) bool {
		return exists(filepath.Join(dir, "system", "controlDict"))
	})
}

func findAncestor(path string, test func(string) bool) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(abs)
	for {
		if test(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
