// Package dictionary is the single entry point for reading and
// editing OpenFOAM dictionary files.
//
// Callers never touch a parser or a subprocess directly: they hold a
// Service wired with one Backend, chosen once at construction. Every
// operation takes the file it works on, so one Service serves a whole
// case tree.
package dictionary

import "context"

// Mode names a backend selection strategy.
type Mode string

const (
	// ModeAuto picks the foamDictionary wrapper when the utility is on
	// PATH and falls back to the built-in engine otherwise.
	ModeAuto Mode = "auto"
	// ModeBuiltin forces the built-in parser and patcher.
	ModeBuiltin Mode = "builtin"
	// ModeFoamDictionary forces the foamDictionary wrapper.
	ModeFoamDictionary Mode = "foamdictionary"
)

// ParseMode validates a backend mode flag value.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeAuto, ModeBuiltin, ModeFoamDictionary:
		return Mode(s), true
	default:
		return "", false
	}
}

// Backend is the contract every dictionary implementation satisfies.
//
// The error discipline is deliberate: I/O problems surface as empty
// results or false, structural misses as false, and only ReadEntry
// returns an error, wrapping ErrNotFound. Callers can therefore chain
// operations without guarding every step.
type Backend interface {
	// Name identifies the implementation in logs and output.
	Name() string

	// ListKeywords returns the top-level keywords of a dictionary file
	// in source order, or an empty list when the file is missing or
	// unreadable.
	ListKeywords(ctx context.Context, file string) []string

	// ListSubkeys returns the keywords nested under a dotted entry
	// path, or an empty list when the path does not resolve to a
	// dictionary block.
	ListSubkeys(ctx context.Context, file string, path string) []string

	// ReadEntry renders the value at a dotted entry path. A missing
	// file or unresolvable path yields an error wrapping ErrNotFound.
	ReadEntry(ctx context.Context, file string, path string) (string, error)

	// WriteEntry normalizes value and patches it into the file at the
	// dotted entry path, creating the entry inside its parent block
	// when absent. It reports whether the file was updated.
	WriteEntry(ctx context.Context, file string, path string, value string) bool

	// ParseBoundaryFile reads a polyMesh boundary file and returns the
	// patch names in order plus a name-to-type map. Failures yield
	// empty results.
	ParseBoundaryFile(ctx context.Context, path string) ([]string, map[string]string)

	// RenameBoundaryPatch renames a patch declaration in a boundary
	// file, reporting whether anything changed.
	RenameBoundaryPatch(ctx context.Context, path string, old, new string) bool

	// ChangeBoundaryPatchType rewrites the type entry of one patch
	// block in a boundary file.
	ChangeBoundaryPatchType(ctx context.Context, path string, patchName, newType string) bool

	// RenameBoundaryFieldPatch renames a patch block inside the
	// boundaryField of one field file.
	RenameBoundaryFieldPatch(ctx context.Context, file string, old, new string) bool
}
