package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
	"github.com/tsawler/outliner/stext"
)

// processFunc extracts an outline from a single input file.
type processFunc func(path string) (model.Result, []pdfdoc.Warning, error)

// Runner processes every document in the configured input directory.
type Runner struct {
	cfg     Config
	log     zerolog.Logger
	process processFunc
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
}

// NewRunner creates a Runner with the given configuration and logger.
func NewRunner(cfg Config, log zerolog.Logger) *Runner {
	r := &Runner{cfg: cfg, log: log}
	r.process = r.extract
	return r
}

// Run scans the input directory, extracts an outline from every PDF and
// structured-text dump it finds, and writes one JSON file per input to the
// output directory. Files that fail are logged and skipped; the run
// continues with the remaining inputs.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if err := ValidateConfig(r.cfg); err != nil {
		return summary, err
	}

	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return summary, fmt.Errorf("read input directory: %w", err)
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output directory: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if format.Detect(name) == format.Unknown {
			summary.Skipped++
			continue
		}

		inPath := filepath.Join(r.cfg.InputDir, name)
		outPath := filepath.Join(r.cfg.OutputDir, outputName(name))

		result, warnings, err := r.process(inPath)
		if err != nil {
			r.log.Error().Err(err).Str("file", name).Msg("extraction failed")
			summary.Failed++
			continue
		}
		for _, w := range warnings {
			r.log.Warn().Str("file", name).Int("page", w.Page).Msg(w.Message)
		}

		if err := writeResult(outPath, result); err != nil {
			r.log.Error().Err(err).Str("file", name).Msg("write failed")
			summary.Failed++
			continue
		}

		r.log.Info().
			Str("file", name).
			Str("title", result.Title).
			Int("headings", len(result.Outline)).
			Msg("outline written")
		summary.Processed++
	}

	return summary, nil
}

// extract loads a single input file and builds its outline.
func (r *Runner) extract(path string) (model.Result, []pdfdoc.Warning, error) {
	cfg := r.cfg.layoutConfig()

	switch format.Detect(path) {
	case format.PDF:
		doc, warnings, err := pdfdoc.Load(path)
		if err != nil {
			return model.Result{}, nil, err
		}
		return layout.Build(doc, cfg), warnings, nil

	case format.StructuredText:
		doc, err := stext.ReadFile(path)
		if err != nil {
			return model.Result{}, nil, err
		}
		return layout.Build(doc, cfg), nil, nil

	default:
		return model.Result{}, nil, fmt.Errorf("unsupported file format: %s", filepath.Base(path))
	}
}

// outputName maps an input filename to its outline filename.
func outputName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return stem + ".json"
}

// writeResult writes the result as indented JSON.
func writeResult(path string, result model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
