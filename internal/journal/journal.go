// Package journal appends a per-case audit trail of dictionary edits.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/foamworks/foamctl/internal/casedir"
)

const (
	dirName     = ".foamctl"
	fileName    = "edits.log"
	maxValueLen = 120
)

// Writer records successful writes to <case>/.foamctl/edits.log, one
// line per edit. Recording is best effort: a file outside any case, or
// an unwritable log, drops the record silently rather than failing the
// write it describes.
type Writer struct {
	now func() time.Time
}

// NewWriter returns a Writer stamping records with the current UTC time.
func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// Record appends one journal line for an edit of key in file.
func (w *Writer) Record(file, key, oldValue string, hadOld bool, newValue string) {
	root, ok := casedir.FindControlRoot(file)
	if !ok {
		return
	}
	logDir := filepath.Join(root, dirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return
	}

	old := "<unknown>"
	if hadOld {
		old = compact(oldValue)
	}
	line := fmt.Sprintf("%s %s %s: %s -> %s\n",
		w.now().UTC().Format(time.RFC3339),
		relToRoot(file, root), key, old, compact(newValue))

	f, err := os.OpenFile(filepath.Join(logDir, fileName),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line)
}

// Path returns the journal location for the case containing file, or
// false when file sits outside any case.
func Path(file string) (string, bool) {
	root, ok := casedir.FindControlRoot(file)
	if !ok {
		return "", false
	}
	return filepath.Join(root, dirName, fileName), true
}

func relToRoot(file, root string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		return filepath.Base(file)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(file)
	}
	return filepath.ToSlash(rel)
}

// compact flattens a value onto one line and clamps its length so the
// journal stays greppable.
func compact(value string) string {
	lines := strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
	text := strings.TrimSpace(strings.Join(lines, " "))
	if len(text) > maxValueLen {
		text = strings.TrimRight(text[:maxValueLen-3], " ") + "..."
	}
	if text == "" {
		return "<empty>"
	}
	return text
}
