package casedir

import (
	"io"
	"os"
	"strings"
)

// IsFoamFile reports whether the file opens with an OpenFOAM FoamFile
// header. Only the first 2 KiB are inspected.
func IsFoamFile(path string) bool {
	head, ok := readHead(path, 2048)
	if !ok {
		return false
	}
	return strings.Contains(head, "FoamFile")
}

// IsFieldFile reports whether the file looks like a field file, i.e. a
// FoamFile that declares an internalField or boundaryField near the
// top.
func IsFieldFile(path string) bool {
	if !IsFoamFile(path) {
		return false
	}
	head, ok := readHead(path, 4096)
	if !ok {
		return false
	}
	return strings.Contains(head, "internalField") || strings.Contains(head, "boundaryField")
}

func readHead(path string, n int) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", false
	}
	return string(buf[:read]), true
}
