package engine

import (
	"strings"

	"github.com/sakura-sbd/sakura"
)

// testRules is a minimal LanguageRules for this package's tests: a period,
// exclamation mark and question mark as terminators, parentheses as an
// asymmetric enclosure pair, double quotes as a symmetric pair, and a
// two-entry abbreviation list.
type testRules struct {
	abbrevs map[string]bool
}

func newTestRules() *testRules {
	return &testRules{abbrevs: map[string]bool{"mr": true, "dr": true}}
}

func (r *testRules) IsTerminator(ch rune) bool {
	return ch == '.' || ch == '!' || ch == '?'
}

func (r *testRules) EnclosureInfo(ch rune) (sakura.EnclosureInfo, bool) {
	switch ch {
	case '(':
		return sakura.EnclosureInfo{TypeID: 0, Delta: 1}, true
	case ')':
		return sakura.EnclosureInfo{TypeID: 0, Delta: -1}, true
	case '"':
		return sakura.EnclosureInfo{TypeID: 1, Symmetric: true}, true
	default:
		return sakura.EnclosureInfo{}, false
	}
}

func (r *testRules) DotRole(prev, next rune) sakura.DotRole {
	if prev >= '0' && prev <= '9' && next >= '0' && next <= '9' {
		return sakura.DecimalDot
	}
	if prev == '.' || next == '.' {
		return sakura.EllipsisTail
	}
	return sakura.Ordinary
}

func (r *testRules) IsAbbreviation(window []byte, dotBytePos int) bool {
	start := dotBytePos
	for start > 0 && isWordByte(window[start-1]) {
		start--
	}
	return r.abbrevs[strings.ToLower(string(window[start:dotBytePos]))]
}

func (r *testRules) Suppress(text []byte, pos int) bool { return false }

func (r *testRules) MaxEnclosurePairs() int { return 2 }

func (r *testRules) EllipsisTreatAsBoundary() bool { return true }

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
