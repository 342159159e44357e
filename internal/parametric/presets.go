package parametric

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PresetsFile is the per-case presets file the param command looks for.
const PresetsFile = "foamctl.parametric"

// Preset is one saved sweep: a dictionary, an entry, and its values.
type Preset struct {
	Name     string
	DictPath string
	Entry    string
	Values   []string
}

// ReadPresets parses a presets file. Each non-comment line is either
//
//	name | dict | entry | v1,v2
//	name: dict entry v1,v2
//
// Malformed lines are reported as problems and skipped rather than
// failing the whole file.
func ReadPresets(path string) ([]Preset, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("failed to read %s: %s", filepath.Base(path), err)}
	}

	var (
		presets  []Preset
		problems []string
	)
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lineNo := i + 1

		var name, dictPath, entry, valuesRaw string
		switch {
		case strings.Contains(line, "|"):
			parts := strings.Split(line, "|")
			if len(parts) != 4 {
				problems = append(problems, fmt.Sprintf("line %d: expected 4 fields separated by |", lineNo))
				continue
			}
			name = strings.TrimSpace(parts[0])
			dictPath = strings.TrimSpace(parts[1])
			entry = strings.TrimSpace(parts[2])
			valuesRaw = strings.TrimSpace(parts[3])
		case strings.Contains(line, ":"):
			namePart, rest, _ := strings.Cut(line, ":")
			tokens := strings.Fields(rest)
			if len(tokens) < 2 {
				problems = append(problems, fmt.Sprintf("line %d: expected '<dict> <entry> <values>'", lineNo))
				continue
			}
			name = strings.TrimSpace(namePart)
			dictPath = tokens[0]
			entry = tokens[1]
			valuesRaw = strings.Join(tokens[2:], " ")
		default:
			problems = append(problems, fmt.Sprintf("line %d: expected 'name | dict | entry | values'", lineNo))
			continue
		}

		values := splitValues(valuesRaw)
		if name == "" || dictPath == "" || entry == "" || len(values) == 0 {
			problems = append(problems, fmt.Sprintf("line %d: missing name, dict, entry, or values", lineNo))
			continue
		}
		presets = append(presets, Preset{Name: name, DictPath: dictPath, Entry: entry, Values: values})
	}
	return presets, problems
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

func splitValues(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}
