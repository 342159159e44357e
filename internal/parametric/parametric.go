// Package parametric clones a base case once per sweep value and
// writes the swept entry into each clone's dictionary.
package parametric

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dictionary"
)

var unsafeValueChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// WriteError reports a clone whose dictionary rejected the swept entry.
type WriteError struct {
	Entry  string
	Target string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to set %s in %s", e.Entry, e.Target)
}

// Options tunes Build.
type Options struct {
	// OutputRoot receives the clones. Empty means the parent
	// directory of the base case.
	OutputRoot string
}

// Build creates one case directory per sweep value: the base case is
// copied minus runtime artifacts, then entry is written into the
// clone's dictionary at dictRel. Blank values are skipped. An existing
// destination, a clone without the dictionary, or a rejected write
// aborts the build; clones already created stay on disk and are
// returned alongside the error.
func Build(ctx context.Context, svc *dictionary.Service, caseDir, dictRel, entry string, values []string, opts Options) ([]string, error) {
	base, err := filepath.Abs(caseDir)
	if err != nil {
		return nil, err
	}
	outputRoot := opts.OutputRoot
	if outputRoot == "" {
		outputRoot = filepath.Dir(base)
	}

	log := ctxlog.FromContext(ctx)
	var created []string
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		dest := filepath.Join(outputRoot, CloneName(filepath.Base(base), entry, value))
		if _, err := os.Lstat(dest); err == nil {
			return created, fmt.Errorf("destination %s: %w", dest, fs.ErrExist)
		}
		if err := copyTree(base, dest); err != nil {
			return created, err
		}
		target := filepath.Join(dest, filepath.FromSlash(dictRel))
		if info, err := os.Stat(target); err != nil || !info.Mode().IsRegular() {
			return created, fmt.Errorf("dictionary %s: %w", target, fs.ErrNotExist)
		}
		if !svc.WriteEntry(ctx, target, entry, value) {
			return created, &WriteError{Entry: entry, Target: target}
		}
		log.Debug("created parametric case", "dest", dest, "entry", entry, "value", value)
		created = append(created, dest)
	}
	return created, nil
}

// CloneName builds the directory name for one sweep value:
// <case>_<entry with dots flattened>_<sanitized value>.
func CloneName(caseName, entry, value string) string {
	return caseName + "_" + strings.ReplaceAll(entry, ".", "_") + "_" + sanitizeValue(value)
}

func sanitizeValue(value string) string {
	safe := unsafeValueChars.ReplaceAllString(strings.TrimSpace(value), "_")
	if safe == "" {
		return "value"
	}
	return safe
}

// skipName filters runtime artifacts out of clones at every depth.
func skipName(name string) bool {
	return strings.HasPrefix(name, "processor") ||
		strings.HasPrefix(name, "log.") ||
		name == "postProcessing" ||
		name == "case.foam"
}

func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if skipName(name) {
			continue
		}
		srcPath := filepath.Join(src, name)
		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, name)
		if info.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
