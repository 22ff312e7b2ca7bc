package engine

import (
	"context"

	"github.com/sakura-sbd/sakura"
)

// Executor runs the scan-and-reduce pipeline over a complete in-memory
// buffer and returns the fully-reduced, finalized PartialState together with
// how many chunks it scanned the text as.
type Executor interface {
	Execute(ctx context.Context, text []byte, rules sakura.LanguageRules, cfg EngineConfig) (sakura.PartialState, int, error)
}
