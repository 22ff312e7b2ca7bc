package engine

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/sakura-sbd/sakura"
)

// Processor is the library's external entry point: it accepts text in any
// of the shapes callers have it in, runs the Delta-Stack Monoid pipeline
// end to end, and reports back both the boundary list and how it got there.
type Processor struct {
	rules      sakura.LanguageRules
	cfg        EngineConfig
	dispatcher AdaptiveDispatcher
}

// NewProcessor builds a Processor. It validates cfg eagerly so a
// misconfiguration surfaces at setup rather than on the first request.
func NewProcessor(rules sakura.LanguageRules, cfg EngineConfig) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Processor{rules: rules, cfg: cfg}, nil
}

// ProcessString segments s.
func (p *Processor) ProcessString(ctx context.Context, s string) (sakura.ProcessorOutput, error) {
	return p.ProcessBytes(ctx, []byte(s))
}

// ProcessBytes segments data, which must be well-formed UTF-8.
func (p *Processor) ProcessBytes(ctx context.Context, data []byte) (sakura.ProcessorOutput, error) {
	if !utf8.Valid(data) {
		return sakura.ProcessorOutput{}, wrapErr("Processor.ProcessBytes", ErrEncodingError)
	}

	mode := p.dispatcher.Choose(len(data), p.cfg)
	var ex Executor
	switch mode {
	case ModeParallel:
		ex = ParallelExecutor{}
	case ModeStreaming:
		ex = StreamingExecutor{}
	default:
		ex = SequentialExecutor{}
		mode = ModeSequential
	}

	start := time.Now()
	state, chunks, err := ex.Execute(ctx, data, p.rules, p.cfg)
	if err != nil {
		return sakura.ProcessorOutput{}, err
	}
	elapsed := time.Since(start)

	threads := 1
	if mode == ModeParallel {
		threads = p.cfg.MaxWorkers
		if threads <= 0 {
			threads = runtime.GOMAXPROCS(0)
		}
	}

	return sakura.ProcessorOutput{
		Boundaries: state.Boundaries,
		Metadata: sakura.ProcessingMetadata{
			Elapsed:         elapsed,
			StrategyUsed:    strategyName(mode),
			ThreadCount:     threads,
			ChunksProcessed: chunks,
			BytesProcessed:  len(data),
			CharsProcessed:  state.CharLen,
		},
	}, nil
}

// ProcessReader segments everything r produces. If the configuration's
// chunk policy is ChunkStreaming, r is read window by window through
// StreamingExecutor.ProcessReader, which keeps every window in memory until
// r is exhausted; otherwise it is read to completion and handed to
// ProcessBytes.
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader) (sakura.ProcessorOutput, error) {
	if p.cfg.ChunkPolicy.Kind == ChunkStreaming {
		start := time.Now()
		state, chunks, err := (StreamingExecutor{}).ProcessReader(ctx, r, p.rules, p.cfg)
		if err != nil {
			return sakura.ProcessorOutput{}, err
		}
		return sakura.ProcessorOutput{
			Boundaries: state.Boundaries,
			Metadata: sakura.ProcessingMetadata{
				Elapsed:         time.Since(start),
				StrategyUsed:    sakura.StrategyStreaming,
				ThreadCount:     1,
				ChunksProcessed: chunks,
				BytesProcessed:  state.ByteLen,
				CharsProcessed:  state.CharLen,
			},
		}, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return sakura.ProcessorOutput{}, wrapErr("Processor.ProcessReader", fmt.Errorf("%w: %w", ErrIOError, err))
	}
	return p.ProcessBytes(ctx, data)
}

func strategyName(mode ExecutionMode) sakura.StrategyName {
	switch mode {
	case ModeParallel:
		return sakura.StrategyParallel
	case ModeStreaming:
		return sakura.StrategyStreaming
	default:
		return sakura.StrategySequential
	}
}
