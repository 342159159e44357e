// Package engine implements the built-in dictionary backend.
//
// Reads go through the forgiving parser in internal/dict. Writes never
// reserialize the parse tree: they splice raw text through
// internal/patch, so comments and formatting outside the touched entry
// survive byte-for-byte.
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dict"
	"github.com/foamworks/foamctl/internal/dictionary"
	"github.com/foamworks/foamctl/internal/keypath"
	"github.com/foamworks/foamctl/internal/patch"
)

// Backend is the built-in implementation of dictionary.Backend. It is
// stateless; the zero value is usable.
type Backend struct{}

// New returns a built-in backend.
func New() *Backend {
	return &Backend{}
}

// Name identifies the backend in logs and output.
func (*Backend) Name() string {
	return "builtin"
}

// ListKeywords returns the top-level keywords of file in source order.
func (*Backend) ListKeywords(ctx context.Context, file string) []string {
	text, ok := readText(ctx, file)
	if !ok {
		return []string{}
	}
	return dict.Parse(text).Keys()
}

// ListSubkeys returns the keywords nested under a dotted entry path.
func (*Backend) ListSubkeys(ctx context.Context, file string, path string) []string {
	text, ok := readText(ctx, file)
	if !ok {
		return []string{}
	}
	node, ok := resolve(dict.Parse(text), keypath.Split(path))
	if !ok {
		return []string{}
	}
	if d, isDict := node.(*dict.Dict); isDict {
		return d.Keys()
	}
	return []string{}
}

// ReadEntry renders the value at a dotted entry path. An empty path
// renders the whole document.
func (*Backend) ReadEntry(ctx context.Context, file string, path string) (string, error) {
	text, ok := readText(ctx, file)
	if !ok {
		return "", fmt.Errorf("%s: %w", path, dictionary.ErrNotFound)
	}
	node, ok := resolve(dict.Parse(text), keypath.Split(path))
	if !ok {
		return "", fmt.Errorf("%s: %w", path, dictionary.ErrNotFound)
	}
	return dict.Render(keypath.Leaf(path), node), nil
}

// WriteEntry normalizes value and patches it into file at the dotted
// entry path. Parent blocks must already exist; the leaf entry is
// created when absent.
func (*Backend) WriteEntry(ctx context.Context, file string, path string, value string) bool {
	text, ok := readText(ctx, file)
	if !ok {
		return false
	}
	parts := keypath.Split(path)
	if len(parts) == 0 {
		return false
	}
	leaf := parts[len(parts)-1]
	parents := parts[:len(parts)-1]

	var span *patch.Span
	if len(parents) > 0 {
		s, found := patch.LocateBlock(text, parents)
		if !found {
			ctxlog.FromContext(ctx).Debug("parent block not found",
				"file", file, "path", path)
			return false
		}
		span = &s
	}

	updated := patch.SetScalar(text, span, leaf, dict.NormalizeValue(value))
	return writeText(ctx, file, updated)
}

// resolve walks a parsed document along path segments.
func resolve(doc *dict.Dict, parts []string) (dict.Value, bool) {
	var node dict.Value = doc
	for _, part := range parts {
		d, isDict := node.(*dict.Dict)
		if !isDict {
			return nil, false
		}
		v, found := d.Get(part)
		if !found {
			return nil, false
		}
		node = v
	}
	return node, true
}

func readText(ctx context.Context, path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("read failed", "file", path, "error", err)
		return "", false
	}
	return string(data), true
}

func writeText(ctx context.Context, path, text string) bool {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		ctxlog.FromContext(ctx).Debug("write failed", "file", path, "error", err)
		return false
	}
	return true
}
