// Package check verifies a case directory: every dictionary file must
// parse, lint rules flag missing entries, and field files must cover
// the mesh patches.
package check

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Rule is one lint rule from a rules file. File is a glob matched
// against the base name of each checked file; Requires lists top-level
// keywords that must be present; When optionally narrows the rule with
// an expression over file.name and file.section.
type Rule struct {
	Name     string         `hcl:"name,label"`
	File     string         `hcl:"file"`
	Requires []string       `hcl:"requires"`
	Warn     string         `hcl:"warn,optional"`
	When     hcl.Expression `hcl:"when,optional"`
}

type rulesFile struct {
	Rules []*Rule `hcl:"rule,block"`
}

// LoadRules reads lint rules from an HCL file.
func LoadRules(path string) ([]*Rule, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, diags)
	}
	return decodeRules(hclFile, path)
}

func decodeRules(hclFile *hcl.File, path string) ([]*Rule, error) {
	var parsed rulesFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file %s: %w", path, diags)
	}
	return parsed.Rules, nil
}

// defaultRulesHCL mirrors the built-in quick lint: the rules that every
// verify run applies when no rules file is given.
const defaultRulesHCL = `
rule "controldict-application" {
  file     = "controlDict"
  requires = ["application"]
  warn     = "controlDict missing 'application'."
}

rule "fvsolution-solvers" {
  file     = "fvSolution"
  requires = ["solvers"]
  warn     = "fvSolution missing 'solvers'."
}

rule "fvschemes-ddt" {
  file     = "fvSchemes"
  requires = ["ddtSchemes"]
  warn     = "fvSchemes missing 'ddtSchemes'."
}

rule "field-boundary" {
  file     = "*"
  requires = ["boundaryField"]
  warn     = "boundaryField missing."
  when     = file.section == "0*"
}
`

// DefaultRules returns the built-in rule set. The embedded source is a
// constant, so a parse failure here is a programming error.
func DefaultRules() []*Rule {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL([]byte(defaultRulesHCL), "default-rules.hcl")
	if diags.HasErrors() {
		panic(fmt.Sprintf("check: default rules do not parse: %s", diags.Error()))
	}
	rules, err := decodeRules(hclFile, "default-rules.hcl")
	if err != nil {
		panic(fmt.Sprintf("check: default rules do not decode: %s", err))
	}
	return rules
}

// Applies reports whether the rule covers a file with the given base
// name in the given section.
func (r *Rule) Applies(name, section string) (bool, error) {
	ok, err := filepath.Match(r.File, name)
	if err != nil {
		return false, fmt.Errorf("rule %s: bad file pattern %q: %w", r.Name, r.File, err)
	}
	if !ok {
		return false, nil
	}
	if r.When == nil {
		return true, nil
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"file": cty.ObjectVal(map[string]cty.Value{
				"name":    cty.StringVal(name),
				"section": cty.StringVal(section),
			}),
		},
	}
	val, diags := r.When.Value(evalCtx)
	if diags.HasErrors() {
		return false, fmt.Errorf("rule %s: when expression: %w", r.Name, diags)
	}
	return !val.IsNull() && val.Type() == cty.Bool && val.True(), nil
}

// Message is the warning text reported when the rule fires.
func (r *Rule) Message(missing []string) string {
	if r.Warn != "" {
		return r.Warn
	}
	text := r.Name + ": missing"
	for i, key := range missing {
		if i > 0 {
			text += ","
		}
		text += " '" + key + "'"
	}
	return text
}
