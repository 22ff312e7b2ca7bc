package sakura

// noChar marks the absence of a head/tail character snapshot (an empty
// chunk has neither).
const noChar rune = -1

// PartialState is a chunk-local accumulator that can be combined with any
// neighbouring chunk's PartialState without re-scanning either one. It is
// pure value semantics: Combine never mutates either operand.
//
// Scanning one chunk produces exactly one PartialState; the executors then
// fold every chunk's PartialState together (Identity ⊕ s0 ⊕ s1 ⊕ … ⊕ sn-1)
// to recover the same boundary list a single sequential scan of the whole
// text would have produced, regardless of how the text was partitioned.
type PartialState struct {
	// Boundaries are candidate boundaries with offsets relative to this
	// chunk's own start (byte 0 / char 0 == the chunk's first byte/rune).
	Boundaries []Boundary

	// Deltas is the per-enclosure-type (net, min) accumulator described in
	// spec.md §3.
	Deltas DeltaVec

	// SymmetricParity is this chunk's own running parity (bit i set == an
	// odd count of symmetric type i characters) summed over the whole
	// chunk. It combines by XOR, the monoid for "evenness of a count" under
	// concatenation.
	SymmetricParity uint64

	// DanglingDot is true iff the chunk ends with a terminator dot whose
	// abbreviation/sentence status could not be decided locally (it depends
	// on what follows, which this chunk doesn't have).
	DanglingDot bool

	// HeadAlpha is true iff the first non-space character of the chunk is
	// alphabetic. Used by the previous chunk's DanglingDot resolution.
	HeadAlpha bool

	// HeadChar / TailChar are the chunk's first/last scalar values, or
	// noChar if the chunk is empty. Used by symmetric-quote resolution and
	// boundary stitching.
	HeadChar rune
	TailChar rune

	// AbbrevPrefixLen / AbbrevSuffixLen count the leading/trailing
	// alphabetic characters adjoining a possible abbreviation boundary,
	// letting the reducer test abbreviation membership across a chunk
	// boundary without re-scanning either chunk.
	AbbrevPrefixLen int
	AbbrevSuffixLen int

	// ByteLen / CharLen are this chunk's total size, used to shift the
	// right operand's Boundaries during Combine.
	ByteLen int
	CharLen int

	// hasContent distinguishes "this chunk scanned zero characters" (the
	// identity element, or a genuinely empty chunk) from "this chunk scanned
	// characters but none of them were alphabetic / non-space", which
	// matters for the left-bias-then-right fallback on HeadAlpha and
	// DanglingDot.
	hasContent bool
}

// Identity returns the identity element of the PartialState monoid: empty
// boundaries, all-zero deltas, no dangling dot, no head/tail character.
func Identity(width int) PartialState {
	return PartialState{
		Deltas:   NewDeltaVec(width),
		HeadChar: noChar,
		TailChar: noChar,
	}
}

// Combine folds left (the receiver) and right, left before right, into a
// single PartialState describing the concatenation of the two chunks they
// summarize. Combine is associative: (a.Combine(b)).Combine(c) ==
// a.Combine(b.Combine(c)) for all a, b, c — see state_test.go for the
// property test.
func (s PartialState) Combine(right PartialState) PartialState {
	out := PartialState{
		Deltas:          s.Deltas.Combine(right.Deltas),
		SymmetricParity: s.SymmetricParity ^ right.SymmetricParity,
		ByteLen:         s.ByteLen + right.ByteLen,
		CharLen:         s.CharLen + right.CharLen,
	}

	out.Boundaries = make([]Boundary, 0, len(s.Boundaries)+len(right.Boundaries))
	out.Boundaries = append(out.Boundaries, s.Boundaries...)
	for _, b := range right.Boundaries {
		out.Boundaries = append(out.Boundaries, Boundary{
			ByteOffset:  b.ByteOffset + s.ByteLen,
			CharOffset:  b.CharOffset + s.CharLen,
			Kind:        b.Kind,
			quoteParity: s.SymmetricParity ^ b.quoteParity,
		})
	}

	if right.hasContent {
		out.DanglingDot = right.DanglingDot
		out.hasContent = true
	} else {
		out.DanglingDot = s.DanglingDot
		out.hasContent = s.hasContent
	}

	if s.hasContent {
		out.HeadAlpha = s.HeadAlpha
	} else {
		out.HeadAlpha = right.HeadAlpha
	}

	if s.HeadChar != noChar {
		out.HeadChar = s.HeadChar
	} else {
		out.HeadChar = right.HeadChar
	}
	if right.TailChar != noChar {
		out.TailChar = right.TailChar
	} else {
		out.TailChar = s.TailChar
	}

	// AbbrevPrefixLen is only meaningful for the leftmost material in the
	// combined state that is still adjoining its own start; once s has any
	// content at all, the combined prefix run is s's own (right's prefix
	// run is interior; a dot dangling at that join is resolved before
	// reduction — see engine.stitchDanglingDots).
	if s.hasContent {
		out.AbbrevPrefixLen = s.AbbrevPrefixLen
	} else {
		out.AbbrevPrefixLen = right.AbbrevPrefixLen
	}
	if right.hasContent {
		out.AbbrevSuffixLen = right.AbbrevSuffixLen
	} else {
		out.AbbrevSuffixLen = s.AbbrevSuffixLen
	}

	return out
}

// Finalize resolves a PartialState that represents the complete input (the
// Sequential executor's single chunk, or the fully-reduced result of every
// chunk the Parallel/Streaming executors produced). A chunk boundary can
// leave DanglingDot set because more text might have followed; at true
// end-of-input no more text ever will, so any outstanding dangling dot is
// resolved as a genuine Strong boundary at the very end of the text. Calling
// Finalize on anything other than the fully-reduced, whole-input state is a
// mistake: it would manufacture a boundary at a chunk join that the next
// chunk was always going to explain.
//
// Finalize also applies the symmetric-enclosure gate: a candidate's
// quoteParity field was a snapshot of running parity at scan time, which
// Combine has since shifted through every later chunk it was folded with, so
// by the time the whole input has been reduced it equals the true parity of
// open symmetric pairs (quotes) entering that position. A nonzero parity
// means the candidate sits inside an unclosed quotation and is dropped,
// mirroring how an asymmetric pair gates its own interior via DeltaVec.
func (s PartialState) Finalize() PartialState {
	out := s
	if s.DanglingDot {
		out.Boundaries = append(append([]Boundary(nil), s.Boundaries...), s.ResolveDanglingDot())
		out.DanglingDot = false
	}

	kept := out.Boundaries[:0:0]
	for _, b := range out.Boundaries {
		if b.quoteParity == 0 {
			kept = append(kept, b)
		}
	}
	out.Boundaries = kept
	return out
}

// ResolveDanglingDot builds the Strong boundary a cross-chunk dangling dot
// resolves to once an executor has decided (by reconstructing the word
// around the join, or by the head_alpha fallback) that it was not an
// abbreviation after all. The boundary is stamped with this chunk's own
// exit parity, exactly as the scanner stamps every boundary it finds
// directly, so it is gated by Finalize's quote-parity check like any other
// candidate instead of always surviving it.
func (s PartialState) ResolveDanglingDot() Boundary {
	return Boundary{
		ByteOffset:  s.ByteLen,
		CharOffset:  s.CharLen,
		Kind:        Strong,
		quoteParity: s.SymmetricParity,
	}
}

// Reduce left-folds a slice of PartialStates into one, in O(n). A tree
// reduction would give the same result in O(log n) depth (Combine is
// associative) but a left fold is simplest and is what the Sequential
// executor's single scan already produces by construction.
func Reduce(states []PartialState, width int) PartialState {
	acc := Identity(width)
	for _, s := range states {
		acc = acc.Combine(s)
	}
	return acc
}
