package casedir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foamworks/foamctl/internal/testutil"
)

func TestDiscover(t *testing.T) {
	caseDir := testutil.MakeCase(t)

	s := Discover(caseDir)

	assert.Equal(t, []string{
		filepath.Join(caseDir, "system", "controlDict"),
		filepath.Join(caseDir, "system", "fvSchemes"),
		filepath.Join(caseDir, "system", "fvSolution"),
	}, s.System)
	assert.Equal(t, []string{
		filepath.Join(caseDir, "constant", "transportProperties"),
	}, s.Constant)
	assert.Equal(t, []string{
		filepath.Join(caseDir, "0", "U"),
		filepath.Join(caseDir, "0", "p"),
	}, s.Zero)
	assert.Len(t, s.All(), 6)
}

func TestDiscoverSkipsResultTimeDirs(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	testutil.WriteFile(t, caseDir, "0.5/U", testutil.FieldU)
	testutil.WriteFile(t, caseDir, "0.orig/U", testutil.FieldU)

	s := Discover(caseDir)

	assert.Contains(t, s.Zero, filepath.Join(caseDir, "0.orig", "U"))
	assert.NotContains(t, s.Zero, filepath.Join(caseDir, "0.5", "U"))
}

func TestDiscoverMissingCase(t *testing.T) {
	s := Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, s.System)
	assert.Empty(t, s.Constant)
	assert.Empty(t, s.Zero)
	assert.Empty(t, s.All())
}

func TestIsFoamFile(t *testing.T) {
	caseDir := testutil.MakeCase(t)

	assert.True(t, IsFoamFile(filepath.Join(caseDir, "system", "controlDict")))
	assert.False(t, IsFoamFile(filepath.Join(caseDir, "missing")))

	plain := testutil.WriteFile(t, caseDir, "notes.txt", "just some notes\n")
	assert.False(t, IsFoamFile(plain))
}

func TestIsFieldFile(t *testing.T) {
	caseDir := testutil.MakeCase(t)

	assert.True(t, IsFieldFile(filepath.Join(caseDir, "0", "U")))
	assert.False(t, IsFieldFile(filepath.Join(caseDir, "system", "controlDict")))
}

func TestZeroDirPrefersPlainZero(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	assert.Equal(t, filepath.Join(caseDir, "0"), ZeroDir(caseDir))
}

func TestZeroDirFallsBackToOrig(t *testing.T) {
	caseDir := t.TempDir()
	testutil.WriteFile(t, caseDir, "0.orig/U", testutil.FieldU)

	assert.Equal(t, filepath.Join(caseDir, "0.orig"), ZeroDir(caseDir))
}

func TestZeroDirWithNeither(t *testing.T) {
	caseDir := t.TempDir()
	assert.Equal(t, filepath.Join(caseDir, "0"), ZeroDir(caseDir))
}

func TestListFieldFiles(t *testing.T) {
	caseDir := testutil.MakeCase(t)
	testutil.WriteFile(t, caseDir, "0/U~", "backup")
	testutil.WriteFile(t, caseDir, "0/.hidden", "dotfile")

	assert.Equal(t, []string{"U", "p"}, ListFieldFiles(caseDir))
}

func TestListFieldFilesNoZeroDir(t *testing.T) {
	assert.Empty(t, ListFieldFiles(t.TempDir()))
}

func TestFindCaseRoot(t *testing.T) {
	caseDir := testutil.MakeCase(t)

	root, ok := FindCaseRoot(filepath.Join(caseDir, "0", "U"))
	require.True(t, ok)
	assert.Equal(t, caseDir, root)

	root, ok = FindCaseRoot(filepath.Join(caseDir, "system", "controlDict"))
	require.True(t, ok)
	assert.Equal(t, caseDir, root)
}

func TestFindCaseRootNotFound(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "somefile")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, ok := FindCaseRoot(file)
	assert.False(t, ok)
}

func TestFindControlRoot(t *testing.T) {
	caseDir := t.TempDir()
	testutil.WriteFile(t, caseDir, "system/controlDict", testutil.ControlDict)
	file := testutil.WriteFile(t, caseDir, "system/fvSchemes", testutil.FvSchemes)

	root, ok := FindControlRoot(file)
	require.True(t, ok)
	assert.Equal(t, caseDir, root)
}

func TestBoundaryPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("case", "constant", "polyMesh", "boundary"),
		BoundaryPath("case"))
}
