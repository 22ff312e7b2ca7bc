package sakura

import "time"

// StrategyName identifies which executor actually processed a request.
type StrategyName string

const (
	StrategySequential StrategyName = "sequential"
	StrategyParallel   StrategyName = "parallel"
	StrategyStreaming  StrategyName = "streaming"
)

// ProcessingMetadata reports how a Processor call was carried out, for
// callers that want to log or benchmark without re-deriving it themselves.
type ProcessingMetadata struct {
	Elapsed         time.Duration
	StrategyUsed    StrategyName
	ThreadCount     int
	ChunksProcessed int
	BytesProcessed  int
	CharsProcessed  int
}

// BytesPerSecond derives throughput from Elapsed and BytesProcessed. It
// returns 0 rather than +Inf when Elapsed rounds to zero.
func (m ProcessingMetadata) BytesPerSecond() float64 {
	seconds := m.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(m.BytesProcessed) / seconds
}

// ProcessorOutput is the result of a single segmentation request: the
// ordered, deduplicated boundary list plus the metadata describing how it
// was produced.
type ProcessorOutput struct {
	Boundaries []Boundary
	Metadata   ProcessingMetadata
}
