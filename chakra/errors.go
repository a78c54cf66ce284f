package chakra

import "errors"

// Sentinel errors for chakra construction and access.
var (
	// ErrBadShape indicates the input is not exactly Size rows × Size columns.
	ErrBadShape = errors.New("chakra: grid must be exactly 27×27")
	// ErrCodeRange indicates a cell value outside [MinCode, MaxCode].
	ErrCodeRange = errors.New("chakra: cell value out of range [1,64]")
	// ErrOutOfBounds indicates a coordinate outside [0,26]×[0,26].
	ErrOutOfBounds = errors.New("chakra: coordinate out of bounds")
)
