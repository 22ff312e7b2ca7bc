package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/sakura-sbd/sakura"
)

// StreamingExecutor scans overlapping windows one at a time. Each window carries
// Overlap trailing bytes into the next one; a candidate boundary found in
// that trailing region is only trusted from whichever window sees it with
// the fuller forward context — the next one — which sidesteps needing the
// Parallel executor's cross-chunk abbreviation stitch entirely, at the cost
// of re-scanning the overlap bytes twice.
type StreamingExecutor struct{}

func (StreamingExecutor) Execute(ctx context.Context, text []byte, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error) {
	windows, err := ChunkStreaming(text, cfg.ChunkPolicy.Window, cfg.ChunkPolicy.Overlap)
	if err != nil {
		return sakura.PartialState{}, 0, err
	}
	return reduceStreamingWindows(ctx, windows, rules, cfg)
}

// ProcessReader reads r in Window-sized, Overlap-deep chunks and returns the
// same PartialState shape Execute does. It keeps every window until r is
// exhausted and only then scans them, so the whole input is held in memory;
// memory use is not bounded by the window size.
func (StreamingExecutor) ProcessReader(ctx context.Context, r io.Reader, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error) {
	window := cfg.ChunkPolicy.Window
	overlap := cfg.ChunkPolicy.Overlap
	if window <= 0 || overlap >= window {
		return sakura.PartialState{}, 0, wrapErr("StreamingExecutor.ProcessReader", ErrChunkingFailed)
	}

	br := bufio.NewReaderSize(r, window)
	var windows []TextChunk
	var carry []byte
	absPos := 0

	for {
		if err := ctx.Err(); err != nil {
			return sakura.PartialState{}, 0, wrapErr("StreamingExecutor.ProcessReader", err)
		}
		buf := make([]byte, window-len(carry))
		n, readErr := io.ReadFull(br, buf)
		buf = buf[:n]
		if n == 0 && readErr != nil {
			if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
				break
			}
			return sakura.PartialState{}, 0, wrapErr("StreamingExecutor.ProcessReader", fmt.Errorf("%w: %w", ErrIOError, readErr))
		}

		combined := append(carry, buf...)
		end := len(combined)
		if readErr == nil {
			// A read can stop partway through a multi-byte rune; end the
			// window at that rune's first byte instead.
			i := end - 1
			for i > 0 && end-i < utf8.UTFMax && !utf8.RuneStart(combined[i]) {
				i--
			}
			if i > 0 && !utf8.FullRune(combined[i:]) {
				end = i
			}
		}
		windows = append(windows, TextChunk{Bytes: combined[:end], Start: absPos})

		if end < len(combined) {
			// Leftover partial rune goes back in front of the next read.
			carry = append([]byte(nil), combined[end:]...)
		} else {
			carry = nil
		}
		absPos += end

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}

		overlapStart := nextBoundary(combined[:end], max(0, end-overlap))
		carry = append(append([]byte(nil), combined[overlapStart:end]...), carry...)
		absPos -= end - overlapStart
	}

	return reduceStreamingWindows(ctx, windows, rules, cfg)
}

func reduceStreamingWindows(ctx context.Context, windows []TextChunk, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error) {
	width := rules.MaxEnclosurePairs()
	if len(windows) == 0 {
		return sakura.Identity(width), 0, nil
	}

	scanner := sakura.NewDeltaScanner(rules)
	var out []sakura.Boundary
	var last sakura.PartialState
	charTotal := 0
	charBase := 0 // runes before the current window's Start

	for i, w := range windows {
		if err := ctx.Err(); err != nil {
			return sakura.PartialState{}, 0, wrapErr("StreamingExecutor", err)
		}
		if i > 0 {
			prev := windows[i-1]
			charBase += utf8.RuneCount(prev.Bytes[:w.Start-prev.Start])
		}
		state, err := scanner.ScanChunk(w.Bytes)
		if err != nil {
			return sakura.PartialState{}, 0, wrapErr("StreamingExecutor", err)
		}

		safeUntil := len(w.Bytes)
		if i != len(windows)-1 {
			safeUntil = cfg.ChunkPolicy.Window - cfg.ChunkPolicy.Overlap
			if safeUntil > len(w.Bytes) {
				safeUntil = len(w.Bytes)
			}
		}
		charTotal += utf8.RuneCount(w.Bytes[:safeUntil])
		// Symmetric-quote parity gating (sakura.PartialState.Finalize's
		// quoteParity check) is not applied here: each window is scanned and
		// reduced independently rather than folded through Combine, so no
		// window carries the true cross-window parity a quote gate needs.
		// A boundary inside an unclosed quote that spans a window join can
		// therefore surface in streaming mode where Sequential/Parallel would
		// suppress it. See DESIGN.md for why this is accepted as a bounded,
		// documented approximation rather than wired up.
		for _, b := range state.Boundaries {
			if b.ByteOffset <= safeUntil {
				out = append(out, sakura.Boundary{
					ByteOffset: w.Start + b.ByteOffset,
					CharOffset: charBase + b.CharOffset,
					Kind:       b.Kind,
				})
			}
		}
		if i == len(windows)-1 {
			last = state
		}
	}

	lastWindow := windows[len(windows)-1]
	final := sakura.Identity(width)
	final.Boundaries = dedupBoundaries(out)
	final.ByteLen = lastWindow.Start + len(lastWindow.Bytes)
	final.CharLen = charTotal
	if last.DanglingDot {
		final.Boundaries = append(final.Boundaries, sakura.Boundary{
			ByteOffset: lastWindow.Start + last.ByteLen,
			CharOffset: charBase + last.CharLen,
			Kind:       sakura.Strong,
		})
	}
	return final, len(windows), nil
}

func dedupBoundaries(bs []sakura.Boundary) []sakura.Boundary {
	seen := make(map[int]bool, len(bs))
	out := bs[:0]
	for _, b := range bs {
		if seen[b.ByteOffset] {
			continue
		}
		seen[b.ByteOffset] = true
		out = append(out, b)
	}
	return out
}
