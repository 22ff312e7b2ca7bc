package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the orchestration layer: execution and environment
// failures, as opposed to the sakura package's deterministic algorithmic
// errors. Compare against these with errors.Is; EngineError below carries
// the operation name that was in progress when one fired.
var (
	// ErrInvalidChunkBoundary means the chunker could not find a UTF-8-safe
	// split point — only reachable on malformed input, since well-formed
	// UTF-8 always has one within three bytes of any offset.
	ErrInvalidChunkBoundary = errors.New("engine: no valid UTF-8 chunk boundary")

	// ErrChunkingFailed means the configured ChunkPolicy is infeasible, e.g.
	// a Streaming window smaller than its own overlap.
	ErrChunkingFailed = errors.New("engine: chunk policy is infeasible")

	// ErrThreadPoolExhausted means the Parallel executor could not acquire a
	// worker slot before its context was cancelled.
	ErrThreadPoolExhausted = errors.New("engine: thread pool exhausted")

	// ErrParallelError wraps a recovered worker panic.
	ErrParallelError = errors.New("engine: worker panic recovered")

	// ErrConfigError means an EngineConfig violated a documented
	// constraint.
	ErrConfigError = errors.New("engine: invalid configuration")

	// ErrIOError wraps a failure reading the input stream.
	ErrIOError = errors.New("engine: input read failed")

	// ErrEncodingError means the input was not well-formed UTF-8.
	ErrEncodingError = errors.New("engine: input is not valid UTF-8")
)

// EngineError is a positional wrapper pairing a sentinel above with the
// operation that was running, mirroring the teacher's ParseError.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine: %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &EngineError{Op: op, Err: err}
}
