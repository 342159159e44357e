// Package caseops implements case-level boundary operations on top of
// the dictionary facade: the patch/field coverage matrix and renames
// that must touch every field file in step with the mesh.
package caseops

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/foamworks/foamctl/internal/casedir"
	"github.com/foamworks/foamctl/internal/dictionary"
)

// CellStatus classifies how a field file covers a mesh patch.
type CellStatus string

const (
	// StatusOK means the patch has its own entry in the field file.
	StatusOK CellStatus = "OK"
	// StatusWildcard means the patch is covered by a wildcard or
	// grouped entry.
	StatusWildcard CellStatus = "WILDCARD"
	// StatusMissing means nothing in the field file covers the patch.
	StatusMissing CellStatus = "MISSING"
)

// Cell is one patch-by-field entry of the coverage matrix.
type Cell struct {
	Status CellStatus
	Type   string
	Value  string
}

// Matrix is the boundary coverage of one case: every mesh patch
// crossed with every time-zero field file.
type Matrix struct {
	Fields  []string
	Patches []string
	Types   map[string]string
	Cells   map[string]map[string]Cell
}

// BuildMatrix reads the mesh boundary file and every field file of the
// case. It always returns a matrix; an unreadable case simply yields
// an empty one.
func BuildMatrix(ctx context.Context, svc *dictionary.Service, caseDir string) *Matrix {
	patches, types := svc.ParseBoundaryFile(ctx, casedir.BoundaryPath(caseDir))
	fields := casedir.ListFieldFiles(caseDir)

	cells := make(map[string]map[string]Cell, len(patches))
	for _, patch := range patches {
		cells[patch] = make(map[string]Cell, len(fields))
	}

	zero := casedir.ZeroDir(caseDir)
	for _, field := range fields {
		file := filepath.Join(zero, field)
		subkeys := svc.ListSubkeys(ctx, file, "boundaryField")
		wildcard := pickWildcard(subkeys, patches)

		for _, patch := range patches {
			switch {
			case slices.Contains(subkeys, patch):
				bcType, _ := readOptional(ctx, svc, file, "boundaryField."+patch+".type")
				bcValue, _ := readOptional(ctx, svc, file, "boundaryField."+patch+".value")
				cells[patch][field] = Cell{
					Status: StatusOK,
					Type:   orElse(bcType, "unknown"),
					Value:  bcValue,
				}
			case wildcard != "":
				bcType, _ := readOptional(ctx, svc, file, "boundaryField."+wildcard+".type")
				bcValue, _ := readOptional(ctx, svc, file, "boundaryField."+wildcard+".value")
				cells[patch][field] = Cell{
					Status: StatusWildcard,
					Type:   orElse(bcType, "wildcard"),
					Value:  orElse(bcValue, "Inherited"),
				}
			default:
				cells[patch][field] = Cell{Status: StatusMissing, Type: "missing"}
			}
		}
	}

	return &Matrix{Fields: fields, Patches: patches, Types: types, Cells: cells}
}

// pickWildcard chooses the covering entry for patches that have no
// entry of their own: a literal ".*" when present, otherwise the first
// subkey that is not a mesh patch, e.g. a grouped "(inlet|outlet)".
func pickWildcard(subkeys, patches []string) string {
	if slices.Contains(subkeys, ".*") {
		return ".*"
	}
	for _, key := range subkeys {
		if !slices.Contains(patches, key) {
			return key
		}
	}
	return ""
}

// readOptional reads an entry, flattening not-found to an empty value.
func readOptional(ctx context.Context, svc *dictionary.Service, file, key string) (string, bool) {
	v, err := svc.ReadEntry(ctx, file, key)
	if err != nil {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(v), ";"), true
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
