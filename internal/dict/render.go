package dict

import (
	"fmt"
	"strings"
)

// Render produces the textual form of a value for facade reads. The
// key name decides the bracket style for lists: a dimension set prints
// with square brackets, every other list with parentheses. Dicts print
// as an indented brace block.
func Render(keyName string, v Value) string {
	switch val := v.(type) {
	case *Dict:
		return renderDict(val)
	case List:
		if keyName == "dimensions" {
			return renderList(val, '[', ']')
		}
		return renderList(val, '(', ')')
	case Scalar:
		return string(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderDict(d *Dict) string {
	lines := []string{"{"}
	for _, key := range d.keys {
		switch val := d.items[key].(type) {
		case *Dict:
			lines = append(lines, "    "+key)
			for _, line := range strings.Split(renderDict(val), "\n") {
				lines = append(lines, "    "+line)
			}
		case List:
			lines = append(lines, "    "+key+" "+renderList(val, '(', ')')+";")
		default:
			lines = append(lines, fmt.Sprintf("    %s %s;", key, val))
		}
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func renderList(values List, left, right byte) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(Scalar); ok {
			parts = append(parts, string(s))
		} else {
			parts = append(parts, Render("", v))
		}
	}
	return string(left) + strings.Join(parts, " ") + string(right)
}
