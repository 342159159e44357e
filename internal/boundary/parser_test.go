package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const boundaryText = `FoamFile
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

func TestParseTextMultilinePatches(t *testing.T) {
	patches, types := ParseText(boundaryText)

	assert.Equal(t, []string{"inlet", "outlet"}, patches)
	assert.Equal(t, map[string]string{"inlet": "patch", "outlet": "patch"}, types)
}

func TestParseTextInlinePatches(t *testing.T) {
	text := `3
(
    inlet { type patch; nFaces 4; startFace 84; }
    wall { type wall; nFaces 12; startFace 88; }
    outlet
    {
        type            patch;
    }
)
`
	patches, types := ParseText(text)

	assert.Equal(t, []string{"inlet", "wall", "outlet"}, patches)
	assert.Equal(t, "patch", types["inlet"])
	assert.Equal(t, "wall", types["wall"])
	assert.Equal(t, "patch", types["outlet"])
}

func TestParseTextWildcardNamesSkipped(t *testing.T) {
	text := `2
(
    inlet
    {
        type            patch;
    }
    ".*"
    {
        type            wall;
    }
)
`
	patches, types := ParseText(text)

	assert.Equal(t, []string{"inlet"}, patches)
	assert.NotContains(t, types, ".*")
}

func TestParseTextDuplicateNamesKept(t *testing.T) {
	text := `2
(
    inlet
    {
        type            patch;
    }
    inlet
    {
        type            wall;
    }
)
`
	patches, types := ParseText(text)

	assert.Equal(t, []string{"inlet", "inlet"}, patches)
	// Later sightings win the type map; the list keeps both rows.
	assert.Equal(t, "wall", types["inlet"])
}

func TestParseTextQuotedName(t *testing.T) {
	text := "1\n(\n    \"inout\"\n    {\n        type            patch;\n    }\n)\n"

	patches, types := ParseText(text)

	assert.Equal(t, []string{"inout"}, patches)
	assert.Equal(t, "patch", types["inout"])
}

func TestParseTextCommentsIgnored(t *testing.T) {
	text := `2 // patch count
(
    // upstream boundary
    inlet
    {
        type            patch; // inflow
    }
)
`
	patches, types := ParseText(text)

	assert.Equal(t, []string{"inlet"}, patches)
	assert.Equal(t, "patch", types["inlet"])
}

func TestParseTextDegenerateInputs(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no list", text: "FoamFile\n{\n}\n"},
		{name: "garbage", text: "%% !! ??\n12 34\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			patches, types := ParseText(tc.text)
			assert.Empty(t, patches)
			assert.Empty(t, types)
		})
	}
}

func TestParseTextStopsAtListClose(t *testing.T) {
	text := `1
(
    inlet
    {
        type            patch;
    }
)

trailing
{
    type            notAPatch;
}
`
	patches, _ := ParseText(text)

	assert.Equal(t, []string{"inlet"}, patches)
}
