package sakura

// DotRole classifies a '.' character by its immediate neighbours, before
// any abbreviation lookup is attempted.
type DotRole uint8

const (
	// Ordinary means the dot is a plain terminator candidate; whether it
	// actually terminates a sentence still depends on is_abbreviation.
	Ordinary DotRole = iota
	// DecimalDot means both neighbours are digits (e.g. "3.14"); never a
	// candidate boundary.
	DecimalDot
	// EllipsisTail means a neighbour is itself a dot (or the language's
	// ellipsis character); only the last dot of a run is a candidate, and
	// only if the rules say ellipses are weak boundaries.
	EllipsisTail
)

// EnclosureInfo describes how a single character participates in an
// enclosure pair (quotes, brackets, and their CJK equivalents).
type EnclosureInfo struct {
	// TypeID identifies the pair this character belongs to. Opener and
	// closer of the same pair — and both characters of a symmetric pair —
	// share a TypeID.
	TypeID uint8
	// Delta is the depth contribution of this character when used as an
	// asymmetric opener (+1) or closer (-1). Symmetric quotes always report
	// 0 here; their contribution is resolved by parity, not by depth.
	Delta int8
	// Symmetric is true for pairs where the same character opens and
	// closes (quotation marks); depth gating for these types happens at
	// reduction time against global parity, not during the scan.
	Symmetric bool
}

// LanguageRules is the full set of language-specific decisions the scanner
// consults. Implementations must be safe for concurrent use by multiple
// goroutines scanning independent chunks of the same text: the Parallel
// executor shares a single LanguageRules value across every worker.
type LanguageRules interface {
	// IsTerminator reports whether ch is sentence-terminating punctuation
	// (. ! ? and CJK equivalents such as 。！？).
	IsTerminator(ch rune) bool

	// EnclosureInfo returns enclosure metadata for ch, or ok=false if ch is
	// not an enclosure character at all.
	EnclosureInfo(ch rune) (info EnclosureInfo, ok bool)

	// DotRole classifies a '.' from its immediate neighbours. prev/next may
	// be -1 to mean "no such neighbour" (start/end of input).
	DotRole(prev, next rune) DotRole

	// IsAbbreviation reports whether the word ending at dotBytePos within
	// window is a known abbreviation. window must contain enough look-back
	// context for the longest configured abbreviation; callers guarantee
	// this even across a chunk boundary (see abbrev_prefix_len /
	// abbrev_suffix_len in PartialState).
	IsAbbreviation(window []byte, dotBytePos int) bool

	// Suppress reports whether a candidate boundary at byte position pos in
	// text must be dropped by a local pattern rule (contraction
	// apostrophes, possessives, list markers, measurement suffixes,
	// IP-address-like patterns, …).
	Suppress(text []byte, pos int) bool

	// MaxEnclosurePairs returns the number of distinct enclosure pair types
	// this ruleset declares — the width every DeltaVec produced against it
	// must have.
	MaxEnclosurePairs() int

	// EllipsisTreatAsBoundary reports whether the tail of an ellipsis run is
	// itself a (weak) sentence boundary under this ruleset.
	EllipsisTreatAsBoundary() bool
}

// maxSymmetricTypes is how many distinct symmetric enclosure pair types a
// single scan can resolve via the parity bitmask carried on each candidate
// boundary and on PartialState.SymmetricParity. MaxEnclosurePairs may exceed
// this; only TypeIDs below maxSymmetricTypes get a parity bit of their own.
// A symmetric TypeID at or above it shares the bit of TypeID modulo
// maxSymmetricTypes, which never matters for the common case (no more than a
// couple of quote styles per language) and can mis-gate pathological configs.
const maxSymmetricTypes = 64
