package dictionary

import "errors"

// ErrNotFound reports that a dictionary entry does not exist. It is
// the only error the read path produces; wrap it with the offending
// path for context.
var ErrNotFound = errors.New("entry not found")

// ErrUnavailable reports that a backend cannot run in this
// environment, e.g. foamDictionary is not on PATH.
var ErrUnavailable = errors.New("backend unavailable")
