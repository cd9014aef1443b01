// Package edna declares the high-level operations of the eDNA to Darwin
// Core conversion. Implementations live in internal packages.
package edna

import (
	"context"

	"github.com/gnames/gnedna/pkg/mapper"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/gnames/gnedna/pkg/survey"
)

// Converter reads survey inputs, resolves species labels and writes the
// Occurrence and DNA derived data files.
type Converter interface {
	// Convert runs the whole pipeline. Registry transport failures and
	// input or output errors abort the run. Each output file is replaced
	// only by a complete table.
	Convert(ctx context.Context) (Summary, error)
}

// NameResolver resolves raw species labels without reading survey
// files.
type NameResolver interface {
	// ResolveNames returns one entry per distinct label, in the order of
	// first appearance.
	ResolveNames(ctx context.Context, labels []string) ([]resolver.Entry, error)
}

// Summary describes a finished conversion.
type Summary struct {
	// Detections is the number of rows in the primary spreadsheet.
	Detections int

	// Labels is the number of distinct species labels.
	Labels int

	// Taxa counts detections by resolution status.
	Taxa resolver.Stats

	// Missing counts values absent from the output.
	Missing mapper.Report

	// OverrideWarnings is the number of override records that could not
	// be applied.
	OverrideWarnings int

	// OccurrencePath and DNADerivedPath are the written files.
	OccurrencePath string
	DNADerivedPath string

	// Duration of the run in seconds.
	Duration float64
}

// Tables provides the static tables curated next to the survey data.
type Tables interface {
	// Overrides returns manual corrections of taxonomic resolution.
	Overrides() ([]survey.Override, error)

	// Biosamples returns links from sample names to biosample records.
	Biosamples() (map[string]string, error)
}
