package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sakura-sbd/sakura/engine"
	"github.com/sakura-sbd/sakura/lang"
)

type segmentOptions struct {
	language       string
	languageConfig string
	format         string
	mode           string
	chunkSize      int
}

func newSegmentCmd() *cobra.Command {
	opts := &segmentOptions{}

	cmd := &cobra.Command{
		Use:   "segment [files...]",
		Short: "Split text into sentences",
		Long: "Segment reads one or more files (or standard input, if none are\n" +
			"given) and prints the sentences found in each, one per line by\n" +
			"default.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegment(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "en", "language code (e.g. en, ja)")
	cmd.Flags().StringVar(&opts.languageConfig, "language-config", "", "path to a custom language config TOML, overriding --language")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json, markdown")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "adaptive", "execution mode: adaptive, sequential, parallel, streaming")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", 0, "chunk size in bytes (0 = engine default for the chosen mode)")

	return cmd
}

func runSegment(ctx context.Context, stdout io.Writer, opts *segmentOptions, files []string) error {
	rules, err := loadRules(opts.language, opts.languageConfig)
	if err != nil {
		return err
	}

	cfg, err := engineConfigFor(opts.mode, opts.chunkSize)
	if err != nil {
		return err
	}

	processor, err := engine.NewProcessor(rules, cfg)
	if err != nil {
		return err
	}

	fm, err := newFormatter(opts.format, stdout)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return segmentReader(ctx, processor, fm, os.Stdin)
	}

	for _, path := range files {
		if err := segmentFile(ctx, processor, fm, path); err != nil {
			return err
		}
	}
	return nil
}

func segmentFile(ctx context.Context, p *engine.Processor, fm formatter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := segmentReader(ctx, p, fm, f); err != nil {
		return err
	}
	log.Info().Str("file", path).Msg("segmented")
	return nil
}

func segmentReader(ctx context.Context, p *engine.Processor, fm formatter, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := p.ProcessBytes(ctx, data)
	if err != nil {
		return err
	}
	log.Debug().
		Str("strategy", string(out.Metadata.StrategyUsed)).
		Int("bytes", out.Metadata.BytesProcessed).
		Int("boundaries", len(out.Boundaries)).
		Dur("elapsed", out.Metadata.Elapsed).
		Msg("processed")
	return writeAll(fm, data, out.Boundaries)
}

func loadRules(language, languageConfig string) (*lang.ConfigurableLanguageRules, error) {
	if languageConfig != "" {
		return lang.NewRulesFromFile(languageConfig)
	}
	return lang.NewRules(language)
}

func engineConfigFor(mode string, chunkSize int) (engine.EngineConfig, error) {
	var cfg engine.EngineConfig
	switch mode {
	case "", "adaptive":
		cfg = engine.NewEngineConfig()
	case "sequential":
		cfg = engine.NewEngineConfig()
		cfg.ExecutionMode = engine.ModeSequential
	case "parallel":
		cfg = engine.Fast()
	case "streaming":
		cfg = engine.Streaming()
	default:
		return engine.EngineConfig{}, unknownModeError(mode)
	}

	if chunkSize > 0 {
		switch cfg.ChunkPolicy.Kind {
		case engine.ChunkFixed:
			cfg.ChunkPolicy.Size = chunkSize
		case engine.ChunkAuto:
			cfg.ChunkPolicy.Target = chunkSize
		case engine.ChunkStreaming:
			cfg.ChunkPolicy.Window = chunkSize
		}
	}

	if err := cfg.Validate(); err != nil {
		return engine.EngineConfig{}, err
	}
	return cfg, nil
}
