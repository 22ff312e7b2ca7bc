package sakura

import "fmt"

// BoundaryKind classifies how a Boundary was recognized.
type BoundaryKind uint8

const (
	// Strong marks an unambiguous sentence-final punctuation mark (. ! ?
	// and their CJK equivalents).
	Strong BoundaryKind = iota
	// Weak marks a boundary recovered from a context that is sentence-final
	// only under policy, such as the tail of an ellipsis run.
	Weak
	// Abbreviation marks a position that would be a boundary if the
	// preceding word were not a known abbreviation. The scanner never emits
	// this kind: a dot after a known abbreviation produces no boundary.
	Abbreviation
)

// String implements fmt.Stringer.
func (k BoundaryKind) String() string {
	switch k {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	case Abbreviation:
		return "abbreviation"
	default:
		return fmt.Sprintf("BoundaryKind(%d)", uint8(k))
	}
}

// Boundary is a single sentence-terminating position in the input.
//
// ByteOffset is the position immediately after the terminating punctuation,
// counted in bytes; CharOffset is the analogous position counted in Unicode
// scalar values. Both are retained so downstream consumers never have to
// re-walk UTF-8 to convert between the two.
type Boundary struct {
	ByteOffset int
	CharOffset int
	Kind       BoundaryKind

	// quoteParity is a snapshot, at scan time, of this chunk's own running
	// parity (bit i set == an odd number of symmetric type i characters seen
	// so far) for every symmetric enclosure type. It is not part of the
	// public boundary identity — two Boundary values with equal
	// ByteOffset/CharOffset/Kind but different quoteParity still describe the
	// same logical boundary once reduction has resolved it — but the
	// reducer needs it to decide whether a candidate sits inside an
	// open quotation once the chunk's entering parity is known.
	quoteParity uint64
}

// NewBoundary constructs a Boundary.
func NewBoundary(byteOffset, charOffset int, kind BoundaryKind) Boundary {
	return Boundary{ByteOffset: byteOffset, CharOffset: charOffset, Kind: kind}
}
