package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/foamworks/foamctl/internal/dictionary"
	"github.com/foamworks/foamctl/internal/engine"
	"github.com/foamworks/foamctl/internal/testutil"
)

func newService() *dictionary.Service {
	return dictionary.NewService(engine.New())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestWrite_PreservesUntouchedBytes pins the core contract of the write
// path: an edit replaces one entry's line and nothing else. The
// expected document is built by splicing the new line into the original
// fixture, so any stray reformatting shows up as a diff.
func TestWrite_PreservesUntouchedBytes(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	file := filepath.Join(caseDir, "system", "controlDict")
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file, "deltaT", "0.005"))

	want := strings.Replace(testutil.ControlDict,
		"deltaT          1;", "deltaT 0.005;", 1)
	require.Empty(t, cmp.Diff(want, readFile(t, file)))
}

func TestWrite_NestedEntryLeavesSiblingsAlone(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	file := filepath.Join(caseDir, "system", "fvSolution")
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file, "solvers.p.solver", "PCG"))

	want := strings.Replace(testutil.FvSolution,
		"        solver          GAMG;", "        solver PCG;", 1)
	require.Empty(t, cmp.Diff(want, readFile(t, file)))

	value, err := svc.ReadEntry(context.Background(), file, "solvers.U.solver")
	require.NoError(t, err)
	require.Equal(t, "smoothSolver", value)
}

// TestWrite_UniformVectorGolden checks the normalization applied on the
// way in: uniform vector components are reformatted to one decimal
// place while the rest of the field file keeps its exact bytes.
func TestWrite_UniformVectorGolden(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	file := filepath.Join(caseDir, "0", "U")
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file,
		"boundaryField.inlet.value", "uniform (2 0 0)"))

	want := strings.Replace(testutil.FieldU,
		"        value           uniform (1 0 0);",
		"        value uniform (2.0 0.0 0.0);", 1)
	require.Empty(t, cmp.Diff(want, readFile(t, file)))

	value, err := svc.ReadEntry(context.Background(), file, "boundaryField.inlet.value")
	require.NoError(t, err)
	require.Equal(t, "uniform (2.0 0.0 0.0)", value)
}

func TestWrite_SecondIdenticalWriteChangesNothing(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	file := filepath.Join(caseDir, "system", "controlDict")
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file, "endTime", "250"))
	first := readFile(t, file)

	require.True(t, svc.WriteEntry(context.Background(), file, "endTime", "250"))
	require.Empty(t, cmp.Diff(first, readFile(t, file)))
}

// TestWrite_InsertsMissingLeaf covers the insertion path: a new entry
// lands just before the closing brace of its parent block.
func TestWrite_InsertsMissingLeaf(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	file := filepath.Join(caseDir, "system", "fvSolution")
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file, "SIMPLE.consistent", "yes"))

	want := strings.Replace(testutil.FvSolution,
		"    nNonOrthogonalCorrectors 0;\n}",
		"    nNonOrthogonalCorrectors 0;\n\n    consistent yes;\n}", 1)
	require.Empty(t, cmp.Diff(want, readFile(t, file)))

	value, err := svc.ReadEntry(context.Background(), file, "SIMPLE.consistent")
	require.NoError(t, err)
	require.Equal(t, "yes", value)
}

func TestWrite_CommentsSurviveEdits(t *testing.T) {
	caseDir := t.TempDir()
	file := testutil.WriteFile(t, caseDir, "system/controlDict", `FoamFile
{
    object      controlDict;
}

// Solver selection.
// Keep in sync with fvSolution.
application     simpleFoam;

deltaT          1;
`)
	svc := newService()

	require.True(t, svc.WriteEntry(context.Background(), file, "application", "pisoFoam"))

	got := readFile(t, file)
	require.Contains(t, got, "// Solver selection.\n// Keep in sync with fvSolution.\napplication pisoFoam;")
	require.Equal(t,
		[]string{"// Solver selection.", "// Keep in sync with fvSolution."},
		svc.EntryComments(context.Background(), file, "application"))
}
