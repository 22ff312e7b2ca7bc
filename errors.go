package sakura

import "errors"

// Core errors are deterministic and algorithmic: given the same rules and
// the same input, they always fire in the same place. They are never
// wrapped — callers compare against them directly with errors.Is.
var (
	// ErrOverflow is returned when a computed offset would exceed the
	// platform's address width. Unreachable on any input that fits in
	// memory; no code path in this module returns it.
	ErrOverflow = errors.New("sakura: offset overflow")

	// ErrInvalidUTF8Boundary is returned when a chunk handed to the scanner
	// does not start on a UTF-8 scalar boundary.
	ErrInvalidUTF8Boundary = errors.New("sakura: chunk does not start on a UTF-8 scalar boundary")

	// ErrTooManyEnclosureTypes is returned when a LanguageRules implementation
	// reports more than 255 distinct enclosure pair types.
	ErrTooManyEnclosureTypes = errors.New("sakura: more than 255 enclosure pair types declared")
)
