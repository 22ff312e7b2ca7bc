package lang

import "github.com/sakura-sbd/sakura"

// encTable maps an enclosure character to its EnclosureInfo: which pair it
// belongs to, its depth contribution, and whether the pair is symmetric.
type encTable struct {
	byChar   map[rune]sakura.EnclosureInfo
	maxTypes int
}

func newEncTable(pairs []EnclosurePair) encTable {
	t := encTable{byChar: make(map[rune]sakura.EnclosureInfo, len(pairs)*2)}
	typeID := 0
	for _, p := range pairs {
		if typeID > 255 {
			break
		}
		open := []rune(p.Open)[0]
		closeCh := []rune(p.Close)[0]
		if p.Symmetric {
			info := sakura.EnclosureInfo{TypeID: uint8(typeID), Delta: 0, Symmetric: true}
			t.byChar[open] = info
			if open != closeCh {
				t.byChar[closeCh] = info
			}
		} else {
			t.byChar[open] = sakura.EnclosureInfo{TypeID: uint8(typeID), Delta: 1, Symmetric: false}
			t.byChar[closeCh] = sakura.EnclosureInfo{TypeID: uint8(typeID), Delta: -1, Symmetric: false}
		}
		typeID++
	}
	t.maxTypes = typeID
	return t
}

func (t encTable) get(ch rune) (sakura.EnclosureInfo, bool) {
	info, ok := t.byChar[ch]
	return info, ok
}

// maxEnclosurePairs is the DeltaVec width a ruleset built from this table
// requires: one slot per declared pair type.
func (t encTable) maxEnclosurePairs() int {
	return t.maxTypes
}
