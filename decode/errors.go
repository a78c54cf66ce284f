package decode

import "errors"

// Sentinel errors for decoding and synthetic encoding.
var (
	// ErrNilTable indicates a nil *script.Table argument.
	ErrNilTable = errors.New("decode: script table is nil")
	// ErrUnencodable indicates text containing a grapheme the table has no code for.
	ErrUnencodable = errors.New("decode: text not encodable with this table")
	// ErrTooLong indicates more codes than the grid has cells.
	ErrTooLong = errors.New("decode: more than 729 codes")
)
