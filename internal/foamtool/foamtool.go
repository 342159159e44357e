// Package foamtool wraps OpenFOAM's foamDictionary utility as a
// dictionary backend.
//
// Entry reads and writes shell out to the tool, which knows every
// corner of the dictionary grammar the built-in parser does not.
// Boundary file surgery stays on the built-in text engine either way:
// foamDictionary rewrites whole files on -set, and the boundary
// operations promise byte-preserving edits.
package foamtool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dict"
	"github.com/foamworks/foamctl/internal/dictionary"
	"github.com/foamworks/foamctl/internal/engine"
	"github.com/foamworks/foamctl/internal/keypath"
)

const toolName = "foamDictionary"

// Available reports whether foamDictionary is on PATH.
func Available() bool {
	_, err := exec.LookPath(toolName)
	return err == nil
}

// Backend runs foamDictionary for entry access and delegates boundary
// surgery to the built-in engine.
type Backend struct {
	tool   string
	native *engine.Backend
}

// New resolves the foamDictionary binary. The error wraps
// dictionary.ErrUnavailable when the tool is not on PATH.
func New() (*Backend, error) {
	path, err := exec.LookPath(toolName)
	if err != nil {
		return nil, fmt.Errorf("%s not on PATH: %w", toolName, dictionary.ErrUnavailable)
	}
	return &Backend{tool: path, native: engine.New()}, nil
}

// Name identifies the backend in logs and output.
func (*Backend) Name() string {
	return "foamdictionary"
}

// ListKeywords shells out with -keywords. Failures yield an empty
// list.
func (b *Backend) ListKeywords(ctx context.Context, file string) []string {
	out, err := b.run(ctx, file, "-keywords")
	if err != nil {
		return []string{}
	}
	return splitLines(out)
}

// ListSubkeys shells out with -entry <path> -keywords.
func (b *Backend) ListSubkeys(ctx context.Context, file string, path string) []string {
	out, err := b.run(ctx, file, "-entry", path, "-keywords")
	if err != nil {
		return []string{}
	}
	return splitLines(out)
}

// ReadEntry shells out with -entry <path>. foamDictionary echoes
// simple scalars as `key value;`; that single-line form is unwrapped
// to just the value so reads feed straight back into writes.
func (b *Backend) ReadEntry(ctx context.Context, file string, path string) (string, error) {
	out, err := b.run(ctx, file, "-entry", path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, dictionary.ErrNotFound)
	}
	text := strings.TrimSpace(out)
	if !strings.Contains(text, "\n") {
		line := strings.TrimSpace(text)
		if idx := strings.IndexAny(line, " \t"); idx > 0 {
			first := line[:idx]
			rest := strings.TrimSpace(line[idx:])
			if first == keypath.Leaf(path) && rest != "" {
				return rest, nil
			}
		}
	}
	return text, nil
}

// WriteEntry normalizes value the same way the built-in backend does,
// then shells out with -entry <path> -set <value>.
func (b *Backend) WriteEntry(ctx context.Context, file string, path string, value string) bool {
	_, err := b.run(ctx, file, "-entry", path, "-set", dict.NormalizeValue(value))
	return err == nil
}

// ParseBoundaryFile delegates to the built-in text parser.
func (b *Backend) ParseBoundaryFile(ctx context.Context, path string) ([]string, map[string]string) {
	return b.native.ParseBoundaryFile(ctx, path)
}

// RenameBoundaryPatch delegates to the built-in text engine.
func (b *Backend) RenameBoundaryPatch(ctx context.Context, path string, old, new string) bool {
	return b.native.RenameBoundaryPatch(ctx, path, old, new)
}

// ChangeBoundaryPatchType delegates to the built-in text engine.
func (b *Backend) ChangeBoundaryPatchType(ctx context.Context, path string, patchName, newType string) bool {
	return b.native.ChangeBoundaryPatchType(ctx, path, patchName, newType)
}

// RenameBoundaryFieldPatch delegates to the built-in text engine.
func (b *Backend) RenameBoundaryFieldPatch(ctx context.Context, file string, old, new string) bool {
	return b.native.RenameBoundaryFieldPatch(ctx, file, old, new)
}

// run executes foamDictionary against one file and returns stdout.
func (b *Backend) run(ctx context.Context, file string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, b.tool, append([]string{file}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		ctxlog.FromContext(ctx).Debug("foamDictionary failed",
			"file", file, "args", args, "error", err,
			"stderr", strings.TrimSpace(stderr.String()))
		return "", err
	}
	return stdout.String(), nil
}

func splitLines(out string) []string {
	result := []string{}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}
