// Package testutil builds throwaway OpenFOAM case trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ControlDict is a minimal but realistic system/controlDict.
const ControlDict = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      controlDict;
}

application     simpleFoam;

startFrom       startTime;

startTime       0;

stopAt          endTime;

endTime         100;

deltaT          1;

writeControl    timeStep;

writeInterval   20;
`

// FvSchemes is a minimal system/fvSchemes.
const FvSchemes = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      fvSchemes;
}

ddtSchemes
{
    default         steadyState;
}

gradSchemes
{
    default         Gauss linear;
}

divSchemes
{
    default         none;
    div(phi,U)      bounded Gauss linearUpwind grad(U);
}
`

// FvSolution is a minimal system/fvSolution.
const FvSolution = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      fvSolution;
}

solvers
{
    p
    {
        solver          GAMG;
        tolerance       1e-06;
        relTol          0.1;
    }

    U
    {
        solver          smoothSolver;
        tolerance       1e-05;
        relTol          0.1;
    }
}

SIMPLE
{
    nNonOrthogonalCorrectors 0;
}
`

// TransportProperties is a minimal constant/transportProperties.
const TransportProperties = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      transportProperties;
}

transportModel  Newtonian;

nu              [0 2 -1 0 0 0 0] 1e-05;
`

// BoundaryFile is a two-patch constant/polyMesh/boundary.
const BoundaryFile = `FoamFile
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

// FieldU is a 0/U matching BoundaryFile's patches.
const FieldU = `FoamFile
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
    inlet
    {
        type            fixedValue;
        value           uniform (1 0 0);
    }

    outlet
    {
        type            zeroGradient;
    }
}
`

// FieldP is a 0/p matching BoundaryFile's patches.
const FieldP = `FoamFile
{
    version     2.0;
    format      ascii;
    class       volScalarField;
    object      p;
}

dimensions      [0 2 -2 0 0 0 0];

internalField   uniform 0;

boundaryField
{
    inlet
    {
        type            zeroGradient;
    }

    outlet
    {
        type            fixedValue;
        value           uniform 0;
    }
}
`

// WriteFile creates one file under dir, making parent directories as
// needed, and returns its path.
func WriteFile(t testing.TB, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteTree materializes a map of relative path to content under dir.
func WriteTree(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		WriteFile(t, dir, rel, content)
	}
}

// MakeCase builds a complete minimal case in a fresh temp directory
// and returns its root.
func MakeCase(t testing.TB) string {
	t.Helper()
	caseDir := t.TempDir()
	WriteTree(t, caseDir, map[string]string{
		"system/controlDict":           ControlDict,
		"system/fvSchemes":             FvSchemes,
		"system/fvSolution":            FvSolution,
		"constant/transportProperties": TransportProperties,
		"constant/polyMesh/boundary":   BoundaryFile,
		"0/U":                          FieldU,
		"0/p":                          FieldP,
	})
	return caseDir
}
