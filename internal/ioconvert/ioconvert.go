// Package ioconvert implements the Converter interface. It reads survey
// inputs, resolves species labels and writes Darwin Core tables.
// This is an impure I/O package.
package ioconvert

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/iofs"
	"github.com/gnames/gnedna/internal/iosheet"
	"github.com/gnames/gnedna/internal/iotables"
	"github.com/gnames/gnedna/internal/iowriter"
	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/edna"
	"github.com/gnames/gnedna/pkg/mapper"
	"github.com/gnames/gnedna/pkg/occid"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/gnames/gnedna/pkg/survey"
	"github.com/gnames/gnfmt"
)

// converter implements the Converter interface.
type converter struct {
	cfg    *config.Config
	reg    resolver.Registry
	prs    resolver.Parser
	tables edna.Tables
}

// New creates a new Converter that resolves names with reg and prs.
func New(
	cfg *config.Config,
	reg resolver.Registry,
	prs resolver.Parser,
) edna.Converter {
	return &converter{
		cfg:    cfg,
		reg:    reg,
		prs:    prs,
		tables: iotables.New(cfg),
	}
}

// Convert runs the pipeline: read inputs, resolve labels, apply
// overrides, map fields, write both tables.
func (c *converter) Convert(ctx context.Context) (edna.Summary, error) {
	var res edna.Summary
	startTime := time.Now()
	slog.Info("Starting conversion",
		"spreadsheet", c.cfg.Input.Spreadsheet,
		"registry", c.cfg.Registry.Type,
	)

	in, err := c.readInputs()
	if err != nil {
		return res, err
	}
	res.Detections = len(in.Detections)
	gn.Info("Loaded <em>%s</em> detections",
		humanize.Comma(int64(res.Detections)))

	ovs, err := c.tables.Overrides()
	if err != nil {
		return res, err
	}

	labels := make([]string, len(in.Detections))
	for i, v := range in.Detections {
		labels[i] = v.Species
	}
	res.Labels = len(resolver.Distinct(labels))

	entries, err := c.resolve(ctx, labels, res.Labels)
	if err != nil {
		return res, err
	}

	entries, warns := resolver.ApplyOverrides(entries, ovs)
	logOverrideWarnings(warns)
	res.OverrideWarnings = len(warns)
	res.Taxa = resolver.Summarize(entries)
	in.Taxa = entries

	m := mapper.New(
		occid.New(occid.Scheme(c.cfg.Occurrence.IDScheme)),
		mapper.OptIdentificationRemarks(c.cfg.Occurrence.IdentificationRemarks),
		mapper.OptAssociatedSequences(c.cfg.Occurrence.AssociatedSequences),
		mapper.OptProtocol(c.cfg.Protocol),
	)
	ds, rep, err := m.Map(in)
	if err != nil {
		return res, err
	}
	res.Missing = rep

	if err = iofs.EnsureOutputDir(c.cfg.Output.Dir); err != nil {
		return res, err
	}
	w := iowriter.New(config.Rune(c.cfg.Output.Delimiter))
	res.OccurrencePath = c.cfg.OccurrencePath()
	res.DNADerivedPath = c.cfg.DNADerivedPath()
	err = w.WriteDataset(ds, res.OccurrencePath, res.DNADerivedPath)
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(startTime).Seconds()
	slog.Info("Conversion complete",
		"detections", res.Detections,
		"labels", res.Labels,
		"unresolved", res.Taxa.Unresolved(),
		"duration", gnfmt.TimeString(res.Duration),
	)
	return res, nil
}

func (c *converter) readInputs() (mapper.Input, error) {
	var res mapper.Input
	var err error
	inp := c.cfg.Input

	if inp.Spreadsheet == "" {
		return res, MissingInputError("spreadsheet", "-i")
	}
	res.Detections, err = iosheet.Detections(
		inp.Spreadsheet, inp.Sheet, c.cfg.Columns,
	)
	if err != nil {
		return res, err
	}

	if inp.Sequences == "" {
		gn.Warn("No sequence table given, <em>DNA_sequence</em> will be empty")
	} else {
		delim := config.Rune(inp.SequencesDelimiter)
		res.Sequences, err = iosheet.Sequences(inp.Sequences, delim)
		if err != nil {
			return res, err
		}
	}

	if inp.ReadCounts == "" {
		gn.Warn("No read counts given, <em>sampleSizeValue</em> will be empty")
	} else {
		res.ReadCounts, err = iosheet.ReadCounts(inp.ReadCounts, "")
		if err != nil {
			return res, err
		}
	}

	res.Biosamples, err = c.tables.Biosamples()
	if err != nil {
		return res, err
	}

	return res, nil
}

func (c *converter) resolve(
	ctx context.Context,
	labels []string,
	distinct int,
) ([]resolver.Entry, error) {
	gn.Info("Resolving <em>%s</em> distinct species labels",
		humanize.Comma(int64(distinct)))

	bar := pb.Full.Start(distinct)
	bar.Set("prefix", "Resolving names: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	r := resolver.New(c.reg, c.prs,
		resolver.OptProgress(func() { bar.Increment() }),
	)
	return r.Resolve(ctx, labels)
}

// Report prints the summary of a conversion for the user.
func Report(s edna.Summary) {
	gn.Info(`Conversion complete
Detections: <em>%s</em>, distinct labels: <em>%s</em>
Accepted: %s, not accepted: %s, overridden: %s, unresolved: %s
Output: <em>%s</em>, <em>%s</em>
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(s.Detections)),
		humanize.Comma(int64(s.Labels)),
		humanize.Comma(int64(s.Taxa.Accepted)),
		humanize.Comma(int64(s.Taxa.NotAccepted)),
		humanize.Comma(int64(s.Taxa.Overridden)),
		humanize.Comma(int64(s.Taxa.Unresolved())),
		s.OccurrencePath,
		s.DNADerivedPath,
		gnfmt.TimeString(s.Duration),
	)

	m := s.Missing
	if m.MissingCoordinates > 0 || m.HemisphereMismatch > 0 {
		gn.Warn("Coordinates: %d not converted, %d unexpected hemisphere",
			m.MissingCoordinates, m.HemisphereMismatch)
	}
	if m.MissingReadCounts > 0 || m.MissingBiosamples > 0 {
		gn.Warn("Rows without read counts: %d, without biosamples: %d",
			m.MissingReadCounts, m.MissingBiosamples)
	}
	if m.MissingSequences > 0 || m.AmbiguousSequences > 0 {
		gn.Warn("Rows without sequences: %d, OTUs with several sequences: %d",
			m.MissingSequences, m.AmbiguousSequences)
	}
	if s.OverrideWarnings > 0 {
		gn.Warn("Overrides not applied: %d, see the log for details",
			s.OverrideWarnings)
	}
}

// nameResolver implements the NameResolver interface.
type nameResolver struct {
	reg    resolver.Registry
	prs    resolver.Parser
	tables edna.Tables
}

// NewNameResolver creates a NameResolver. Label overrides from the
// static tables are applied to its results.
func NewNameResolver(
	cfg *config.Config,
	reg resolver.Registry,
	prs resolver.Parser,
) edna.NameResolver {
	return &nameResolver{reg: reg, prs: prs, tables: iotables.New(cfg)}
}

func (n *nameResolver) ResolveNames(
	ctx context.Context,
	labels []string,
) ([]resolver.Entry, error) {
	uniq := resolver.Distinct(labels)
	r := resolver.New(n.reg, n.prs)
	res, err := r.Resolve(ctx, uniq)
	if err != nil {
		return nil, err
	}

	ovs, err := n.tables.Overrides()
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(uniq))
	for _, v := range uniq {
		present[v] = true
	}
	var byLabel []survey.Override
	for _, v := range ovs {
		if v.Row == nil && present[v.Verbatim] {
			byLabel = append(byLabel, v)
		}
	}
	res, warns := resolver.ApplyOverrides(res, byLabel)
	logOverrideWarnings(warns)
	return res, nil
}

func logOverrideWarnings(warns []resolver.OverrideWarning) {
	for _, v := range warns {
		args := []any{
			"verbatim", v.Override.Verbatim,
			"name", v.Override.Name,
			"reason", v.Message,
		}
		if v.Override.Row != nil {
			args = append(args, "row", *v.Override.Row)
		}
		slog.Warn("Override is not applied", args...)
	}
}
