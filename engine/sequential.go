package engine

import (
	"context"

	"github.com/sakura-sbd/sakura"
)

// SequentialExecutor scans the whole input as a single chunk. It is always
// correct and is the baseline every other executor is validated against: no
// chunking means no cross-chunk stitching is ever needed.
type SequentialExecutor struct{}

func (SequentialExecutor) Execute(ctx context.Context, text []byte, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error) {
	if err := ctx.Err(); err != nil {
		return sakura.PartialState{}, 0, wrapErr("SequentialExecutor.Execute", err)
	}
	scanner := sakura.NewDeltaScanner(rules)
	state, err := scanner.ScanChunk(text)
	if err != nil {
		return sakura.PartialState{}, 0, wrapErr("SequentialExecutor.Execute", err)
	}
	return state.Finalize(), 1, nil
}
