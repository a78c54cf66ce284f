package script

import "errors"

// Sentinel errors for table construction and registry operations.
var (
	// ErrBadSpec indicates a spec that cannot form a coherent table.
	ErrBadSpec = errors.New("script: invalid table spec")
	// ErrUnknownScript indicates a registry lookup for a name never registered.
	ErrUnknownScript = errors.New("script: unknown script name")
	// ErrDuplicateScript indicates a second registration under the same name.
	ErrDuplicateScript = errors.New("script: script name already registered")
	// ErrNilTable indicates an attempt to register a nil table.
	ErrNilTable = errors.New("script: nil table")
)
