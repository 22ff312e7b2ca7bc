package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncTableAsymmetricPairs(t *testing.T) {
	table := newEncTable([]EnclosurePair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
	})

	info, ok := table.get('(')
	require.True(t, ok)
	assert.Equal(t, uint8(0), info.TypeID)
	assert.EqualValues(t, 1, info.Delta)
	assert.False(t, info.Symmetric)

	info, ok = table.get(')')
	require.True(t, ok)
	assert.Equal(t, uint8(0), info.TypeID)
	assert.EqualValues(t, -1, info.Delta)

	info, ok = table.get('[')
	require.True(t, ok)
	assert.Equal(t, uint8(1), info.TypeID)

	assert.Equal(t, 2, table.maxEnclosurePairs())
}

func TestEncTableSymmetricPairs(t *testing.T) {
	table := newEncTable([]EnclosurePair{
		{Open: "\"", Close: "\"", Symmetric: true},
	})

	info, ok := table.get('"')
	require.True(t, ok)
	assert.Equal(t, uint8(0), info.TypeID)
	assert.EqualValues(t, 0, info.Delta)
	assert.True(t, info.Symmetric)
}

func TestEncTableUnknownCharacter(t *testing.T) {
	table := newEncTable([]EnclosurePair{{Open: "(", Close: ")"}})
	_, ok := table.get('x')
	assert.False(t, ok)
}
