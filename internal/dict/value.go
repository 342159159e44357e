// Package dict parses OpenFOAM case dictionaries into an ordered,
// read-only document model.
//
// The parser is deliberately forgiving: it tokenizes best-effort, skips
// structure it cannot place, and always yields a document. The document
// is only ever used for reading; edits go through raw-text patching so
// that comments and formatting survive untouched.
package dict

// Value is one node of a parsed dictionary document. It is a closed
// sum: Scalar, List, or *Dict.
type Value interface {
	isValue()
}

// Scalar is an opaque run of value tokens joined by single spaces, e.g.
// "uniform (0 0 0)" or "simpleFoam". No semantic interpretation is
// applied beyond tokenization.
type Scalar string

func (Scalar) isValue() {}

// List holds the elements of a bracketed numeric run such as a
// dimension set. Elements are stored as already-formatted Scalars.
type List []Value

func (List) isValue() {}

// Dict is a nested dictionary block. Keys keep their source order and
// duplicates keep the first value seen.
type Dict struct {
	keys  []string
	items map[string]Value
}

// NewDict returns an empty dictionary node.
func NewDict() *Dict {
	return &Dict{items: make(map[string]Value)}
}

func (*Dict) isValue() {}

// Len reports the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the entry keywords in source order. The returned slice
// is a copy.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get looks up one entry by keyword.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.items[key]
	return v, ok
}

// has reports whether key is already present, without exposing the map.
func (d *Dict) has(key string) bool {
	_, ok := d.items[key]
	return ok
}

// put stores an entry, recording insertion order for fresh keys.
func (d *Dict) put(key string, v Value) {
	if !d.has(key) {
		d.keys = append(d.keys, key)
	}
	d.items[key] = v
}
