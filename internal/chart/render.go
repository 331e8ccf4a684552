// Package chart renders the five BlitzForge presentation charts to PNG
// files. It consumes resolved (label, value) data from the scenario
// catalog and the keyspace model; all visual presentation lives here.
package chart

import (
	"io"
	"os"
	"path/filepath"

	"github.com/101shaan/BlitzForge/internal/errors"
	"github.com/101shaan/BlitzForge/internal/log"
)

// DefaultOutputDir is the fixed directory the charts are written to,
// created on first use.
const DefaultOutputDir = "graphs"

// Output filenames, fixed by the presentation deck that embeds them.
const (
	FileCrackTimeByLength   = "crack_time_by_length.png"
	FileWeakVsStrong        = "weak_vs_strong.png"
	FileAlgorithmComparison = "algorithm_comparison.png"
	FileKeyspaceGrowth      = "keyspace_growth.png"
	FileRealWorldTimes      = "real_world_times.png"
)

// Generator renders the full chart set for one run. HashRate is the
// process-lifetime attack rate in hashes per second; it is read-only
// after construction.
type Generator struct {
	hashRate  float64
	outputDir string
	theme     Theme
}

// NewGenerator creates a generator. An empty outputDir selects
// DefaultOutputDir.
func NewGenerator(hashRate float64, outputDir string, theme Theme) (*Generator, error) {
	if hashRate <= 0 {
		return nil, errors.NewInvalidArgument("hashRate", "must be positive")
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Generator{hashRate: hashRate, outputDir: outputDir, theme: theme}, nil
}

// GenerateAll renders the five charts sequentially, returning the
// paths written. The first hard error stops the run; regenerating
// overwrites existing files.
func (g *Generator) GenerateAll() ([]string, error) {
	charts := []struct {
		file   string
		render func(io.Writer) error
	}{
		{FileCrackTimeByLength, g.renderCrackTimeByLength},
		{FileWeakVsStrong, g.renderWeakVsStrong},
		{FileAlgorithmComparison, g.renderAlgorithmComparison},
		{FileKeyspaceGrowth, g.renderKeyspaceGrowth},
		{FileRealWorldTimes, g.renderRealWorldTimes},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path, err := g.writeChart(c.file, c.render)
		if err != nil {
			return paths, err
		}
		log.Info("chart saved", log.String("file", path))
		paths = append(paths, path)
	}
	return paths, nil
}

// writeChart creates the output directory if absent, then streams one
// rendered chart into its file. Writes are fire-and-forget: output is
// idempotent, so there is no retry or temp-file shuffle.
func (g *Generator) writeChart(name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", errors.NewRenderError(name, err)
	}

	path := filepath.Join(g.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.NewRenderError(name, err)
	}

	if err := render(f); err != nil {
		f.Close()
		return "", errors.NewRenderError(name, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.NewRenderError(name, err)
	}
	return path, nil
}
