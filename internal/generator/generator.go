// Package generator sequences the full pipeline: acquire the corpus, walk
// it, build the report, persist it. Cleanup of an acquired scratch corpus is
// guaranteed on every exit path.
package generator

import (
	"context"
	"log"

	"github.com/stubgen/stubgen/internal/acquire"
	"github.com/stubgen/stubgen/internal/config"
	"github.com/stubgen/stubgen/internal/extract"
	"github.com/stubgen/stubgen/internal/report"
)

// Artifact provenance for the phpstorm-stubs inventory. Source and branch
// come from configuration; the rest identifies the upstream license.
const (
	artifactVersion    = "1.0"
	upstreamLicense    = "Apache-2.0"
	upstreamCopyright  = "Copyright 2010-2024 JetBrains s.r.o."
	upstreamLicenseURL = "https://github.com/JetBrains/phpstorm-stubs/blob/master/LICENSE"
)

// Generator runs the symbol inventory pipeline.
type Generator struct {
	cfg      *config.Config
	acquirer *acquire.Acquirer
	progress extract.ProgressReporter
}

// New creates a generator. A nil progress reporter disables progress output.
func New(cfg *config.Config, progress extract.ProgressReporter) *Generator {
	if progress == nil {
		progress = &extract.NoOpProgressReporter{}
	}
	return &Generator{
		cfg: cfg,
		acquirer: acquire.New(acquire.Config{
			RepoURL: cfg.Source.Repo,
			Branch:  cfg.Source.Branch,
			Timeout: cfg.Source.CloneTimeout,
		}),
		progress: progress,
	}
}

// Run executes acquire → walk → build → write and returns the built report.
// stubsPath, when non-empty, is used as the corpus instead of cloning.
// outputPath overrides the configured output location when non-empty.
func (g *Generator) Run(ctx context.Context, stubsPath, outputPath string) (*report.Report, error) {
	corpus, err := g.acquirer.Acquire(ctx, stubsPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if relErr := corpus.Release(); relErr != nil {
			log.Printf("Warning: %v\n", relErr)
		}
	}()

	extractor := extract.NewExtractor(extract.NewRegistry(), extract.NewNameFilter())
	walker, err := extract.NewWalker(corpus.Root(), extract.WalkerConfig{
		SkipDirs:          g.cfg.Scan.SkipDirs,
		IncludeExtensions: g.cfg.Scan.IncludeExtensions,
		Workers:           g.cfg.Scan.Workers,
	}, extractor, g.progress)
	if err != nil {
		return nil, err
	}

	agg, err := walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	rep := report.Build(agg, report.Provenance{
		Source:     g.cfg.Source.Repo,
		Branch:     g.cfg.Source.Branch,
		Version:    artifactVersion,
		License:    upstreamLicense,
		Copyright:  upstreamCopyright,
		LicenseURL: upstreamLicenseURL,
	})

	if outputPath == "" {
		outputPath = g.cfg.Output.Path
	}
	if err := report.Write(rep, outputPath); err != nil {
		return nil, err
	}

	return rep, nil
}
