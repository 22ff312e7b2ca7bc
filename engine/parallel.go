package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sakura-sbd/sakura"
)

// ParallelExecutor runs the four-phase pipeline spec.md describes: chunk,
// scan each chunk concurrently, prefix-sum the per-chunk delta vectors, then
// filter/stitch the candidates those prefixes disagree with before the
// final reduce. Correctness does not depend on chunk count, chunk order, or
// worker scheduling — only on Combine being associative.
type ParallelExecutor struct{}

func (ParallelExecutor) Execute(ctx context.Context, text []byte, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error) {
	chunks, err := chunkFor(text, cfg)
	if err != nil {
		return sakura.PartialState{}, 0, err
	}
	if len(chunks) == 0 {
		return sakura.Identity(rules.MaxEnclosurePairs()), 0, nil
	}

	states, err := scanChunksConcurrently(ctx, chunks, rules, cfg)
	if err != nil {
		return sakura.PartialState{}, 0, err
	}

	width := rules.MaxEnclosurePairs()
	deltas := make([]sakura.DeltaVec, len(states))
	for i, s := range states {
		deltas[i] = s.Deltas
	}
	prefix := sakura.PrefixSum(deltas, width)

	// Phase 3: a chunk's locally-filtered candidates already have a
	// per-type local depth of exactly zero at the moment the scanner
	// emitted them (that is what "emitted only if locally balanced" means).
	// So the global filter collapses to: either every one of a chunk's
	// candidates survives (the chunk was entered at global depth zero for
	// every type), or none of them do.
	for i := range states {
		if !prefix[i].ZeroAt() {
			states[i].Boundaries = nil
			states[i].DanglingDot = false
		}
	}

	// Phase 4: resolve dots the scanner deferred because a chunk boundary
	// fell in the middle of deciding their role.
	stitchDanglingDots(states, chunks, rules)

	final := sakura.Reduce(states, width)
	return final.Finalize(), len(chunks), nil
}

func chunkFor(text []byte, cfg EngineConfig) ([]TextChunk, error) {
	switch cfg.ChunkPolicy.Kind {
	case ChunkFixed:
		return ChunkFixed(text, cfg.ChunkPolicy.Size)
	case ChunkAuto:
		return ChunkAuto(text, cfg.ChunkPolicy.Target)
	case ChunkStreaming:
		return ChunkStreaming(text, cfg.ChunkPolicy.Window, cfg.ChunkPolicy.Overlap)
	default:
		return nil, wrapErr("chunkFor", ErrChunkingFailed)
	}
}

func scanChunksConcurrently(ctx context.Context, chunks []TextChunk, rules sakura.LanguageRules, cfg EngineConfig) ([]sakura.PartialState, error) {
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	states := make([]sakura.PartialState, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return wrapErr("ParallelExecutor.Execute", err)
			}
			defer func() {
				if r := recover(); r != nil {
					err = wrapErr("ParallelExecutor.Execute", fmt.Errorf("%w: %v", ErrParallelError, r))
				}
			}()
			scanner := sakura.NewDeltaScanner(rules)
			state, scanErr := scanner.ScanChunk(chunk.Bytes)
			if scanErr != nil {
				return wrapErr("ParallelExecutor.Execute", scanErr)
			}
			states[i] = state
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

// stitchDanglingDots resolves, in place, every adjacent pair of chunks
// where the left chunk ended mid-decision on a terminator dot. When enough
// look-back/look-forward context survives on both sides to reconstruct the
// word the dot belonged to, it re-runs the abbreviation check against the
// reconstructed word; otherwise it falls back to spec.md §4.5's head_alpha
// heuristic.
func stitchDanglingDots(states []sakura.PartialState, chunks []TextChunk, rules sakura.LanguageRules) {
	for i := 0; i < len(states)-1; i++ {
		left := states[i]
		if !left.DanglingDot {
			continue
		}
		right := states[i+1]

		isAbbrev := false
		decided := false
		if left.AbbrevSuffixLen > 0 && right.AbbrevPrefixLen > 0 {
			end := len(chunks[i].Bytes) - 1 // the dangling dot itself
			suffix := chunks[i].Bytes[end-left.AbbrevSuffixLen : end]
			prefix := chunks[i+1].Bytes[:right.AbbrevPrefixLen]
			window := make([]byte, 0, len(suffix)+1+len(prefix))
			window = append(window, suffix...)
			window = append(window, '.')
			window = append(window, prefix...)
			isAbbrev = rules.IsAbbreviation(window, len(suffix))
			decided = true
		}
		if !decided {
			isAbbrev = right.HeadAlpha
		}

		states[i].DanglingDot = false
		if !isAbbrev {
			states[i].Boundaries = append(states[i].Boundaries, states[i].ResolveDanglingDot())
		}
	}
}
