package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concatChunks(chunks []TextChunk) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c.Bytes...)
	}
	return out
}

func TestChunkFixedCoversWholeInput(t *testing.T) {
	text := []byte(strings.Repeat("abcdefgh ", 100))
	chunks, err := ChunkFixed(text, 17)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Equal(t, text, concatChunks(chunks))
	for i, c := range chunks {
		assert.Equal(t, c.Start, sumLens(chunks[:i]))
	}
}

func sumLens(chunks []TextChunk) int {
	n := 0
	for _, c := range chunks {
		n += len(c.Bytes)
	}
	return n
}

func TestChunkFixedNeverSplitsMultibyteRune(t *testing.T) {
	text := []byte(strings.Repeat("日本語のテキストです。", 20))
	chunks, err := ChunkFixed(text, 13)
	require.NoError(t, err)
	for _, c := range chunks {
		assert.True(t, isCharBoundary(text, c.Start))
		assert.True(t, isCharBoundary(text, c.Start+len(c.Bytes)))
	}
	assert.Equal(t, text, concatChunks(chunks))
}

func TestChunkFixedRejectsNonPositiveSize(t *testing.T) {
	_, err := ChunkFixed([]byte("hi"), 0)
	assert.Error(t, err)
}

func TestChunkAutoCapsAtGOMAXPROCS(t *testing.T) {
	text := []byte(strings.Repeat("x", 1<<20))
	chunks, err := ChunkAuto(text, 1024)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(chunks), maxProcsForTest())
	assert.Equal(t, text, concatChunks(chunks))
}

func maxProcsForTest() int {
	chunks, _ := ChunkAuto([]byte(strings.Repeat("x", 1<<20)), 1)
	return len(chunks)
}

func TestChunkAutoEmptyInput(t *testing.T) {
	chunks, err := ChunkAuto(nil, 1024)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkStreamingOverlapsWindows(t *testing.T) {
	text := []byte(strings.Repeat("the quick brown fox jumps. ", 50))
	windows, err := ChunkStreaming(text, 100, 20)
	require.NoError(t, err)
	require.Greater(t, len(windows), 1)
	for i := 1; i < len(windows); i++ {
		assert.LessOrEqual(t, windows[i].Start, windows[i-1].Start+len(windows[i-1].Bytes))
		assert.Greater(t, windows[i].Start+len(windows[i].Bytes), windows[i-1].Start+len(windows[i-1].Bytes))
	}
	last := windows[len(windows)-1]
	assert.Equal(t, len(text), last.Start+len(last.Bytes))
}

func TestChunkStreamingRejectsOverlapNotSmallerThanWindow(t *testing.T) {
	_, err := ChunkStreaming([]byte("hello"), 10, 10)
	assert.Error(t, err)
}

func TestChunkStreamingEmptyInput(t *testing.T) {
	windows, err := ChunkStreaming(nil, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, windows)
}
