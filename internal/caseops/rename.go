package caseops

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/foamworks/foamctl/internal/casedir"
	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dictionary"
)

// RenamePatch renames a mesh patch in the boundary file and then in
// every time-zero field file. Field files that lack the patch are
// tolerated; the mesh rename must succeed. The returned error carries
// the user-facing reason.
func RenamePatch(ctx context.Context, svc *dictionary.Service, caseDir, old, new string) error {
	if old == new {
		return errors.New("new patch name matches the existing name")
	}
	boundaryPath := casedir.BoundaryPath(caseDir)
	if !isFile(boundaryPath) {
		return errors.New("boundary file not found")
	}
	if !svc.RenameBoundaryPatch(ctx, boundaryPath, old, new) {
		return errors.New("patch not found in boundary file")
	}

	zero := casedir.ZeroDir(caseDir)
	for _, field := range casedir.ListFieldFiles(caseDir) {
		file := filepath.Join(zero, field)
		if !svc.RenameBoundaryFieldPatch(ctx, file, old, new) {
			ctxlog.FromContext(ctx).Debug("field file kept its boundary entries",
				"file", file, "patch", old)
		}
	}
	return nil
}

// ChangePatchType rewrites the type of one patch in the mesh boundary
// file.
func ChangePatchType(ctx context.Context, svc *dictionary.Service, caseDir, patchName, newType string) error {
	boundaryPath := casedir.BoundaryPath(caseDir)
	if !isFile(boundaryPath) {
		return errors.New("boundary file not found")
	}
	if !svc.ChangeBoundaryPatchType(ctx, boundaryPath, patchName, newType) {
		return errors.New("patch not found in boundary file")
	}
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
