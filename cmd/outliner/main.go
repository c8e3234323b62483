package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/internal/batch"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputDir   string
		outputDir  string
		configPath string
		clipMargin float64
		titleBand  float64
		maxRanked  int
		verbose    bool
	)

	flag.StringVar(&inputDir, "input", "", "Directory scanned for PDF and structured-text documents")
	flag.StringVar(&outputDir, "output", "", "Directory receiving one outline JSON file per document")
	flag.StringVar(&configPath, "config", os.Getenv("OUTLINER_CONFIG"), "Path to YAML config file")
	flag.Float64Var(&clipMargin, "clip", 0, "Fraction of page height clipped from the top and bottom (default 0.10)")
	flag.Float64Var(&titleBand, "titleBand", 0, "Fraction of the first page searched for the title (default 0.70)")
	flag.IntVar(&maxRanked, "maxRanked", 0, "Heading size tiers ranked above body size, 1-3 (default 3)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := batch.Config{
		InputDir:       inputDir,
		OutputDir:      outputDir,
		ClipMargin:     clipMargin,
		TitleBand:      titleBand,
		MaxRankedSizes: maxRanked,
		Verbose:        verbose,
	}

	if configPath != "" {
		fc, err := batch.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config load failed")
			os.Exit(1)
		}
		batch.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Single-file mode: outline each named file to stdout.
	if args := flag.Args(); len(args) > 0 {
		for _, path := range args {
			if err := outlineFile(path); err != nil {
				log.Error().Err(err).Str("file", path).Msg("extraction failed")
				os.Exit(1)
			}
		}
		return
	}

	summary, err := batch.NewRunner(cfg, log.Logger).Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}

	log.Info().
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Int("skipped", summary.Skipped).
		Msg("batch complete")
	if summary.Failed > 0 {
		os.Exit(2)
	}
}

// outlineFile extracts a single document and writes its outline to stdout.
func outlineFile(path string) error {
	result, warnings, err := outliner.Open(path).Outline()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn().Str("file", path).Int("page", w.Page).Msg(w.Message)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
