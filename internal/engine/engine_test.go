package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foamworks/foamctl/internal/dictionary"
)

const controlDictFixture = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      controlDict;
}

application     simpleFoam;

startTime       0;

endTime         100;

deltaT          1;
`

const fieldFixture = `FoamFile
{
    version     2.0;
    format      ascii;
    class       volVectorField;
    object      U;
}

dimensions      [0 1 -1 0 0 0 0];

internalField   uniform (0 0 0);

boundaryField
{
    // upstream boundary
    inlet
    {
        type            fixedValue;
        value           uniform (2 2 2);
    }

    outlet
    {
        type            zeroGradient;
    }
}
`

const boundaryFixture = `FoamFile
{
    version     2.0;
    format      ascii;
    class       polyBoundaryMesh;
    object      boundary;
}

2
(
    inlet
    {
        type            patch;
        nFaces          4;
        startFace       84;
    }
    outlet
    {
        type            patch;
        nFaces          4;
        startFace       88;
    }
)
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestListKeywords(t *testing.T) {
	file := writeTemp(t, "controlDict", controlDictFixture)

	keys := New().ListKeywords(context.Background(), file)

	assert.Equal(t, []string{"FoamFile", "application", "startTime", "endTime", "deltaT"}, keys)
}

func TestListKeywordsMissingFile(t *testing.T) {
	keys := New().ListKeywords(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, keys)
}

func TestListSubkeys(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	assert.Equal(t, []string{"inlet", "outlet"}, b.ListSubkeys(ctx, file, "boundaryField"))
	assert.Equal(t, []string{"type", "value"}, b.ListSubkeys(ctx, file, "boundaryField.inlet"))
	// Scalar entries and missing paths have no subkeys.
	assert.Empty(t, b.ListSubkeys(ctx, file, "internalField"))
	assert.Empty(t, b.ListSubkeys(ctx, file, "boundaryField.walls"))
}

func TestReadEntry(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "scalar keyword", path: "boundaryField.inlet.type", expected: "fixedValue"},
		{name: "vector value", path: "internalField", expected: "uniform (0 0 0)"},
		{name: "dimension set keeps square brackets", path: "dimensions", expected: "[0 1 -1 0 0 0 0]"},
		{name: "nested value", path: "boundaryField.inlet.value", expected: "uniform (2 2 2)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := b.ReadEntry(ctx, file, tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestReadEntryMissing(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)

	_, err := New().ReadEntry(context.Background(), file, "boundaryField.walls.type")
	require.Error(t, err)
	assert.ErrorIs(t, err, dictionary.ErrNotFound)
}

func TestReadEntryMissingFile(t *testing.T) {
	_, err := New().ReadEntry(context.Background(), filepath.Join(t.TempDir(), "nope"), "application")
	assert.ErrorIs(t, err, dictionary.ErrNotFound)
}

func TestWriteEntryNormalizesUniform(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	ok := b.WriteEntry(ctx, file, "boundaryField.inlet.value", "uniform (1 0 0)")
	require.True(t, ok)

	text := readBack(t, file)
	assert.Contains(t, text, "value uniform (1.0 0.0 0.0);")
	assert.NotContains(t, text, "(2 2 2)")

	v, err := b.ReadEntry(ctx, file, "boundaryField.inlet.value")
	require.NoError(t, err)
	assert.Equal(t, "uniform (1.0 0.0 0.0)", v)
}

func TestWriteEntryPreservesSurroundingBytes(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)

	ok := New().WriteEntry(context.Background(), file, "boundaryField.inlet.value", "uniform (1 0 0)")
	require.True(t, ok)

	text := readBack(t, file)
	// Comments, header and sibling blocks stay byte-identical.
	assert.Contains(t, text, "    // upstream boundary\n")
	assert.Contains(t, text, "    version     2.0;\n")
	assert.Contains(t, text, "        type            fixedValue;\n")
	assert.Contains(t, text, "    outlet\n    {\n        type            zeroGradient;\n    }")
}

func TestWriteEntryRootScalar(t *testing.T) {
	file := writeTemp(t, "controlDict", controlDictFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.WriteEntry(ctx, file, "deltaT", "0.5"))

	text := readBack(t, file)
	assert.Contains(t, text, "deltaT 0.5;")

	v, err := b.ReadEntry(ctx, file, "deltaT")
	require.NoError(t, err)
	assert.Equal(t, "0.5", v)
}

func TestWriteEntryCreatesMissingLeaf(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.WriteEntry(ctx, file, "boundaryField.outlet.value", "uniform 0"))

	v, err := b.ReadEntry(ctx, file, "boundaryField.outlet.value")
	require.NoError(t, err)
	assert.Equal(t, "uniform 0.0", v)
}

func TestWriteEntryMissingParent(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	before := readBack(t, file)

	ok := New().WriteEntry(context.Background(), file, "boundaryField.walls.type", "wall")

	assert.False(t, ok)
	assert.Equal(t, before, readBack(t, file))
}

func TestWriteEntryMissingFile(t *testing.T) {
	ok := New().WriteEntry(context.Background(), filepath.Join(t.TempDir(), "nope"), "deltaT", "1")
	assert.False(t, ok)
}

func TestWriteEntryEmptyPath(t *testing.T) {
	file := writeTemp(t, "controlDict", controlDictFixture)
	ok := New().WriteEntry(context.Background(), file, "", "1")
	assert.False(t, ok)
}

func TestWriteEntryIdempotent(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.WriteEntry(ctx, file, "boundaryField.inlet.value", "uniform (1 0 0)"))
	first := readBack(t, file)

	require.True(t, b.WriteEntry(ctx, file, "boundaryField.inlet.value", "uniform (1 0 0)"))
	assert.Equal(t, first, readBack(t, file))
}

func TestParseBoundaryFile(t *testing.T) {
	file := writeTemp(t, "boundary", boundaryFixture)

	patches, types := New().ParseBoundaryFile(context.Background(), file)

	assert.Equal(t, []string{"inlet", "outlet"}, patches)
	assert.Equal(t, map[string]string{"inlet": "patch", "outlet": "patch"}, types)
}

func TestParseBoundaryFileMissing(t *testing.T) {
	patches, types := New().ParseBoundaryFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, patches)
	assert.Empty(t, types)
}

func TestRenameBoundaryPatch(t *testing.T) {
	file := writeTemp(t, "boundary", boundaryFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.RenameBoundaryPatch(ctx, file, "inlet", "inflow"))

	patches, _ := b.ParseBoundaryFile(ctx, file)
	assert.Equal(t, []string{"inflow", "outlet"}, patches)
	assert.NotContains(t, readBack(t, file), "inlet")
}

func TestRenameBoundaryPatchMissing(t *testing.T) {
	file := writeTemp(t, "boundary", boundaryFixture)
	before := readBack(t, file)

	assert.False(t, New().RenameBoundaryPatch(context.Background(), file, "walls", "sides"))
	assert.Equal(t, before, readBack(t, file))
}

func TestChangeBoundaryPatchType(t *testing.T) {
	file := writeTemp(t, "boundary", boundaryFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.ChangeBoundaryPatchType(ctx, file, "inlet", "wall"))

	_, types := b.ParseBoundaryFile(ctx, file)
	assert.Equal(t, "wall", types["inlet"])
	assert.Equal(t, "patch", types["outlet"])

	// Face bookkeeping is untouched.
	assert.Contains(t, readBack(t, file), "        nFaces          4;\n        startFace       84;")
}

func TestChangeBoundaryPatchTypeMissingPatch(t *testing.T) {
	file := writeTemp(t, "boundary", boundaryFixture)
	assert.False(t, New().ChangeBoundaryPatchType(context.Background(), file, "walls", "wall"))
}

func TestRenameBoundaryFieldPatch(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	b := New()
	ctx := context.Background()

	require.True(t, b.RenameBoundaryFieldPatch(ctx, file, "inlet", "inflow"))

	text := readBack(t, file)
	assert.Contains(t, text, "inflow")
	assert.Contains(t, text, "value           uniform (2 2 2);")
	assert.Equal(t, []string{"inflow", "outlet"}, b.ListSubkeys(ctx, file, "boundaryField"))
}

func TestRenameBoundaryFieldPatchMissing(t *testing.T) {
	file := writeTemp(t, "U", fieldFixture)
	assert.False(t, New().RenameBoundaryFieldPatch(context.Background(), file, "walls", "sides"))
}

func TestBackendSatisfiesInterface(t *testing.T) {
	var _ dictionary.Backend = New()
}

func TestOperationsSurviveDegenerateFiles(t *testing.T) {
	b := New()
	ctx := context.Background()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "unmatched brace", content: "solvers\n{\n    p\n"},
		{name: "binary-ish garbage", content: "\x00\x01\x02 {{{ ;;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := writeTemp(t, "weird", tc.content)

			assert.NotPanics(t, func() {
				b.ListKeywords(ctx, file)
				b.ListSubkeys(ctx, file, "a.b")
				_, _ = b.ReadEntry(ctx, file, "a.b")
				b.ParseBoundaryFile(ctx, file)
			})
		})
	}
}
