// Package mapper turns survey detections and their taxonomic resolution
// into Darwin Core Occurrence and DNA derived data records.
//
// Mapping is a pure column transform plus left joins. It never adds or
// drops occurrence rows.
package mapper

import (
	"log/slog"
	"strings"

	"github.com/gnames/gnedna/pkg/coord"
	"github.com/gnames/gnedna/pkg/dwc"
	"github.com/gnames/gnedna/pkg/occid"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/gnames/gnedna/pkg/survey"
)

// Input collects everything needed to build a dataset.
type Input struct {
	// Detections are rows of the primary spreadsheet.
	Detections []survey.Detection

	// Taxa contains one resolution entry per detection, in the same
	// order.
	Taxa []resolver.Entry

	// Sequences link OTU numbers to DNA sequences.
	Sequences []survey.Sequence

	// ReadCounts are filtered read counts per sample.
	ReadCounts []survey.ReadCount

	// Biosamples maps sample names to biosample URIs.
	Biosamples map[string]string
}

// Report counts missing values surfaced in the output.
type Report struct {
	MissingCoordinates int
	HemisphereMismatch int
	MissingReadCounts  int
	MissingBiosamples  int
	MissingSequences   int
	AmbiguousSequences int
	MissingEventDates  int
	UnresolvedNames    int
}

// Mapper builds Darwin Core tables.
type Mapper struct {
	ids       occid.Generator
	remarks   string
	assocSeqs string
	protocol  dwc.Protocol
}

// Option configures a Mapper.
type Option func(*Mapper)

// OptIdentificationRemarks sets identificationRemarks for all occurrences.
func OptIdentificationRemarks(s string) Option {
	return func(m *Mapper) {
		m.remarks = s
	}
}

// OptAssociatedSequences sets associatedSequences for all occurrences.
func OptAssociatedSequences(s string) Option {
	return func(m *Mapper) {
		m.assocSeqs = s
	}
}

// OptProtocol sets DNA derived data metadata.
func OptProtocol(p dwc.Protocol) Option {
	return func(m *Mapper) {
		m.protocol = p
	}
}

// New creates a Mapper that uses ids to generate occurrenceID values.
func New(ids occid.Generator, opts ...Option) *Mapper {
	res := &Mapper{ids: ids}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Map builds the Occurrence and DNA derived data tables. Both tables have
// exactly one row per detection.
func (m *Mapper) Map(in Input) (*dwc.Dataset, Report, error) {
	var rep Report
	if len(in.Taxa) != len(in.Detections) {
		return nil, rep, TaxaMismatchError(len(in.Detections), len(in.Taxa))
	}

	reads := readCountIndex(in.ReadCounts)
	seqs, ambiguous := sequenceIndex(in.Sequences)
	rep.AmbiguousSequences = ambiguous

	res := &dwc.Dataset{
		Occurrences: make([]dwc.Occurrence, 0, len(in.Detections)),
		DNADerived:  make([]dwc.DNADerived, 0, len(in.Detections)),
	}

	for i, d := range in.Detections {
		taxon := in.Taxa[i]
		occ := m.occurrence(d, taxon, &rep)

		if v, ok := reads[strings.TrimSpace(d.Sample)]; ok {
			occ.SampleSizeValue = v
		} else {
			rep.MissingReadCounts++
		}

		if v, ok := in.Biosamples[strings.TrimSpace(d.Sample)]; ok {
			occ.MaterialSampleID = v
		} else {
			rep.MissingBiosamples++
		}

		dna := dwc.DNADerived{
			OccurrenceID: occ.OccurrenceID,
			TaxonID:      occ.TaxonID,
			Protocol:     m.protocol,
		}
		if v, ok := seqs[occ.TaxonID]; ok {
			dna.DNASequence = v
		} else {
			rep.MissingSequences++
		}

		res.Occurrences = append(res.Occurrences, occ)
		res.DNADerived = append(res.DNADerived, dna)
	}

	if len(res.Occurrences) != len(in.Detections) ||
		len(res.DNADerived) != len(in.Detections) {
		return nil, rep, RowCountError(
			len(in.Detections), len(res.Occurrences), len(res.DNADerived),
		)
	}

	return res, rep, nil
}

func (m *Mapper) occurrence(
	d survey.Detection,
	taxon resolver.Entry,
	rep *Report,
) dwc.Occurrence {
	otu := Integer(d.OTU)
	minDepth, maxDepth := Depth(d.Bathymetry)

	res := dwc.Occurrence{
		OccurrenceID:           m.ids.ID(otu, d.Latitude, d.Longitude, d.Date),
		EventID:                strings.TrimSpace(d.Sample),
		EventDate:              EventDate(d.Year, d.Month),
		DecimalLatitude:        m.latitude(d, rep),
		DecimalLongitude:       m.longitude(d, rep),
		MinimumDepthInMeters:   minDepth,
		MaximumDepthInMeters:   maxDepth,
		RecordedBy:             strings.TrimSpace(d.Method),
		OrganismQuantity:       Integer(d.Reads),
		OrganismQuantityType:   dwc.OrganismQuantityType,
		SampleSizeUnit:         dwc.SampleSizeUnit,
		OccurrenceStatus:       dwc.OccurrenceStatus,
		BasisOfRecord:          dwc.BasisOfRecord,
		TaxonID:                otu,
		Kingdom:                strings.TrimSpace(d.Kingdom),
		Phylum:                 strings.TrimSpace(d.Phylum),
		Class:                  strings.TrimSpace(d.Class),
		Order:                  strings.TrimSpace(d.Order),
		Family:                 strings.TrimSpace(d.Family),
		Genus:                  strings.TrimSpace(d.Genus),
		VerbatimIdentification: d.Species,
		ScientificName:         taxon.Canonical,
		ScientificNameID:       taxon.ID,
		IdentificationRemarks:  m.remarks,
		AssociatedSequences:    m.assocSeqs,
	}

	if res.EventDate == "" {
		rep.MissingEventDates++
	}
	if taxon.ID == "" {
		rep.UnresolvedNames++
	}
	return res
}

// latitude keeps the unsigned value, the survey area is in the
// northern hemisphere.
func (m *Mapper) latitude(d survey.Detection, rep *Report) string {
	c, err := coord.Parse(d.Latitude)
	if err != nil {
		rep.MissingCoordinates++
		slog.Warn("Cannot convert latitude", "row", d.Row, "value", d.Latitude)
		return ""
	}
	if c.Hemisphere != 'N' {
		rep.HemisphereMismatch++
		slog.Warn("Latitude is not in the northern hemisphere",
			"row", d.Row, "value", d.Latitude)
	}
	return Decimal(c.Decimal())
}

// longitude negates the converted value, the survey area is west of
// Greenwich.
func (m *Mapper) longitude(d survey.Detection, rep *Report) string {
	c, err := coord.Parse(d.Longitude)
	if err != nil {
		rep.MissingCoordinates++
		slog.Warn("Cannot convert longitude", "row", d.Row, "value", d.Longitude)
		return ""
	}
	if c.Hemisphere != 'W' {
		rep.HemisphereMismatch++
		slog.Warn("Longitude is not in the western hemisphere",
			"row", d.Row, "value", d.Longitude)
	}
	return Decimal(-c.Decimal())
}

func readCountIndex(rcs []survey.ReadCount) map[string]string {
	res := make(map[string]string, len(rcs))
	for _, v := range rcs {
		k := strings.TrimSpace(v.Sample)
		if _, ok := res[k]; ok {
			continue
		}
		res[k] = Integer(v.Reads)
	}
	return res
}

// sequenceIndex maps OTU numbers to sequences. When several different
// sequences share an OTU number the first one is used.
func sequenceIndex(seqs []survey.Sequence) (map[string]string, int) {
	var ambiguous int
	res := make(map[string]string, len(seqs))
	for _, v := range survey.DedupSequences(seqs) {
		k := Integer(v.TaxonID)
		if _, ok := res[k]; ok {
			ambiguous++
			slog.Warn("Several sequences for the same OTU, using the first",
				"taxonID", k)
			continue
		}
		res[k] = strings.TrimSpace(v.Sequence)
	}
	return res, ambiguous
}
