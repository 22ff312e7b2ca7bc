package sakura

// delta is the per-enclosure-type accumulator over a chunk: the signed net
// depth change, and the minimum running depth reached within the chunk
// (measured from a hypothetical starting depth of zero).
//
// min is the piece that makes the monoid work: without it, closing an
// enclosure before it was opened within a chunk ("a unbalanced chunk") would
// look identical to a balanced chunk once combined with a neighbour, and the
// combine below could not tell whether that close ever went negative against
// whatever depth the left neighbour left behind.
type delta struct {
	net int32
	min int32
}

// identityDelta returns the identity for a single enclosure slot: no net
// change, and a minimum of zero (an empty chunk never dips below its own
// start).
func identityDelta() delta {
	return delta{}
}

// combine folds two adjacent deltas, left before right. It is the
// "max-subarray-style" fold referenced in spec.md §4.3: the right side's
// minimum is only meaningful once offset by whatever depth the left side
// left it with.
func (d delta) combine(other delta) delta {
	rightMin := d.net + other.min
	m := d.min
	if rightMin < m {
		m = rightMin
	}
	return delta{net: d.net + other.net, min: m}
}

// DeltaVec is a fixed-width vector of (net, min) pairs, one slot per
// enclosure pair type declared by a LanguageRules implementation. It
// supports a pointwise associative Combine, and is the payload the
// executors prefix-sum over.
type DeltaVec struct {
	slots []delta
}

// NewDeltaVec returns the identity DeltaVec of the given width.
func NewDeltaVec(width int) DeltaVec {
	return DeltaVec{slots: make([]delta, width)}
}

// Len reports the vector's width (the number of declared enclosure types).
func (v DeltaVec) Len() int {
	return len(v.slots)
}

// Net returns the net depth delta accumulated for enclosure type i.
func (v DeltaVec) Net(i int) int {
	return int(v.slots[i].net)
}

// Min returns the minimum running depth reached for enclosure type i,
// relative to a hypothetical starting depth of zero.
func (v DeltaVec) Min(i int) int {
	return int(v.slots[i].min)
}

// apply folds a single character's effect (open: +1, close: -1) into slot i.
func (v DeltaVec) apply(i int, step int32) DeltaVec {
	out := v.clone()
	s := out.slots[i]
	s.net += step
	if s.net < s.min {
		s.min = s.net
	}
	out.slots[i] = s
	return out
}

func (v DeltaVec) clone() DeltaVec {
	out := DeltaVec{slots: make([]delta, len(v.slots))}
	copy(out.slots, v.slots)
	return out
}

// Combine folds v and other slot-wise; v is the left operand. Both vectors
// must share the same width (the same LanguageRules produced both).
func (v DeltaVec) Combine(other DeltaVec) DeltaVec {
	out := DeltaVec{slots: make([]delta, len(v.slots))}
	for i := range out.slots {
		out.slots[i] = v.slots[i].combine(other.slots[i])
	}
	return out
}

// ZeroAt reports whether every slot's net depth is exactly zero — the
// condition spec.md §3 requires of every asymmetric enclosure type at a
// surviving boundary's position.
func (v DeltaVec) ZeroAt() bool {
	for _, s := range v.slots {
		if s.net != 0 {
			return false
		}
	}
	return true
}

// PrefixSum computes, for n DeltaVec values, the n+1 running sums
// prefix[0]=Identity, prefix[i+1]=prefix[i].Combine(vecs[i]). This is the
// left fold spec.md §4.5 calls the "prefix-sum phase": prefix[i] is the
// outstanding per-type depth accumulated by every chunk strictly before i.
func PrefixSum(vecs []DeltaVec, width int) []DeltaVec {
	out := make([]DeltaVec, len(vecs)+1)
	out[0] = NewDeltaVec(width)
	for i, v := range vecs {
		out[i+1] = out[i].Combine(v)
	}
	return out
}
