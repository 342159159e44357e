package engine

import (
	"context"

	"github.com/foamworks/foamctl/internal/boundary"
	"github.com/foamworks/foamctl/internal/patch"
)

// ParseBoundaryFile reads a polyMesh boundary file. Failures yield
// empty results, never an error.
func (*Backend) ParseBoundaryFile(ctx context.Context, path string) ([]string, map[string]string) {
	text, ok := readText(ctx, path)
	if !ok {
		return []string{}, map[string]string{}
	}
	return boundary.ParseText(text)
}

// RenameBoundaryPatch renames every declaration of a patch in a
// boundary file.
func (*Backend) RenameBoundaryPatch(ctx context.Context, path string, old, new string) bool {
	text, ok := readText(ctx, path)
	if !ok {
		return false
	}
	updated, ok := boundary.RenamePatch(text, old, new)
	if !ok {
		return false
	}
	return writeText(ctx, path, updated)
}

// ChangeBoundaryPatchType rewrites the type entry of one patch block.
// The new type is written as given, without value normalization.
func (*Backend) ChangeBoundaryPatchType(ctx context.Context, path string, patchName, newType string) bool {
	text, ok := readText(ctx, path)
	if !ok {
		return false
	}
	span, ok := patch.LocateBlock(text, []string{patchName})
	if !ok {
		return false
	}
	updated := patch.SetScalar(text, &span, "type", newType)
	return writeText(ctx, path, updated)
}

// RenameBoundaryFieldPatch renames a patch block inside the
// boundaryField of one field file.
func (*Backend) RenameBoundaryFieldPatch(ctx context.Context, file string, old, new string) bool {
	text, ok := readText(ctx, file)
	if !ok {
		return false
	}
	updated, ok := boundary.RenameFieldPatch(text, old, new)
	if !ok {
		return false
	}
	return writeText(ctx, file, updated)
}
