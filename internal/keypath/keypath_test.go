package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "simple path",
			path:     "a.b.c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "single segment",
			path:     "application",
			expected: []string{"application"},
		},
		{
			name:     "nested boundary entry",
			path:     "boundaryField.inlet.type",
			expected: []string{"boundaryField", "inlet", "type"},
		},
		{
			name:     "empty segments dropped",
			path:     "a..b",
			expected: []string{"a", "b"},
		},
		{
			name:     "leading dot dropped",
			path:     ".a.b",
			expected: []string{"a", "b"},
		},
		{
			name:     "empty path",
			path:     "",
			expected: nil,
		},
		{
			name:     "dots only",
			path:     "...",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.path))
		})
	}
}

func TestLeaf(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "nested path", path: "boundaryField.inlet.value", expected: "value"},
		{name: "single segment", path: "dimensions", expected: "dimensions"},
		{name: "trailing dot", path: "solvers.p.", expected: "p"},
		{name: "empty path", path: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Leaf(tc.path))
		})
	}
}
