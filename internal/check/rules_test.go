package check

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foamworks/foamctl/internal/testutil"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 4)

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "controldict-application")
	assert.Contains(t, names, "fvsolution-solvers")
	assert.Contains(t, names, "fvschemes-ddt")
	assert.Contains(t, names, "field-boundary")
}

func TestLoadRules(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "rules.hcl", `
rule "turbulence" {
  file     = "turbulenceProperties"
  requires = ["simulationType"]
  warn     = "turbulenceProperties missing 'simulationType'."
}
`)
	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "turbulence", rules[0].Name)
	assert.Equal(t, "turbulenceProperties", rules[0].File)
	assert.Equal(t, []string{"simulationType"}, rules[0].Requires)
	assert.Nil(t, rules[0].When)
}

func TestLoadRulesBadSyntax(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "rules.hcl", `rule "broken" {`)
	_, err := LoadRules(path)
	require.Error(t, err)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestRuleApplies(t *testing.T) {
	byName := map[string]*Rule{}
	for _, r := range DefaultRules() {
		byName[r.Name] = r
	}

	tests := []struct {
		name    string
		rule    string
		file    string
		section string
		want    bool
	}{
		{"controlDict matches", "controldict-application", "controlDict", "system", true},
		{"other file does not", "controldict-application", "fvSchemes", "system", false},
		{"field rule in zero dir", "field-boundary", "U", "0*", true},
		{"field rule outside zero dir", "field-boundary", "transportProperties", "constant", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := byName[tt.rule].Applies(tt.file, tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleAppliesBadPattern(t *testing.T) {
	r := &Rule{Name: "broken", File: "["}
	_, err := r.Applies("controlDict", "system")
	require.Error(t, err)
}

func TestRuleMessage(t *testing.T) {
	r := &Rule{Name: "custom", File: "*", Requires: []string{"a", "b"}}
	assert.Equal(t, "custom: missing 'a', 'b'", r.Message([]string{"a", "b"}))

	r.Warn = "custom text"
	assert.Equal(t, "custom text", r.Message([]string{"a"}))
}
