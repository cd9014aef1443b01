package iosheet

import (
	"log/slog"
	"strings"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/survey"
)

// Detections reads the primary spreadsheet. Header names come from
// cols. Sample, latitude, longitude, OTU and species columns are
// required, other missing columns give empty values. Blank rows are
// skipped, Row keeps the position among the remaining data rows.
func Detections(
	path, sheet string,
	cols config.ColumnsConfig,
) ([]survey.Detection, error) {
	rows, err := readTable(path, sheet, ',')
	if err != nil {
		return nil, err
	}
	rows = dropEmpty(rows)
	if len(rows) < 2 {
		return nil, InputEmptyError(path)
	}

	hdr := header(rows[0])
	required := []string{
		cols.Sample, cols.Latitude, cols.Longitude, cols.OTU, cols.Species,
	}
	for _, v := range required {
		if _, ok := hdr[normalize(v)]; !ok {
			return nil, InputColumnError(path, v)
		}
	}

	optional := []string{
		cols.Method, cols.Date, cols.Month, cols.Season, cols.Year,
		cols.Bathymetry, cols.Reads, cols.Kingdom, cols.Phylum, cols.Class,
		cols.Order, cols.Family, cols.Genus,
	}
	for _, v := range optional {
		if _, ok := hdr[normalize(v)]; !ok {
			slog.Warn("Column not found, values will be empty",
				"column", v, "file", path)
		}
	}

	get := func(row []string, col string) string {
		if i, ok := hdr[normalize(col)]; ok {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	res := make([]survey.Detection, 0, len(rows)-1)
	for i, row := range rows[1:] {
		d := survey.Detection{
			Row:        i,
			Sample:     get(row, cols.Sample),
			Method:     get(row, cols.Method),
			Date:       get(row, cols.Date),
			Month:      get(row, cols.Month),
			Season:     get(row, cols.Season),
			Year:       get(row, cols.Year),
			Bathymetry: get(row, cols.Bathymetry),
			Latitude:   get(row, cols.Latitude),
			Longitude:  get(row, cols.Longitude),
			Reads:      get(row, cols.Reads),
			OTU:        get(row, cols.OTU),
			Kingdom:    get(row, cols.Kingdom),
			Phylum:     get(row, cols.Phylum),
			Class:      get(row, cols.Class),
			Order:      get(row, cols.Order),
			Family:     get(row, cols.Family),
			Genus:      get(row, cols.Genus),
		}
		// the raw label is kept verbatim
		if j, ok := hdr[normalize(cols.Species)]; ok {
			d.Species = row[j]
		}
		res = append(res, d)
	}

	slog.Info("Detections loaded", "file", path, "rows", len(res))
	return res, nil
}

// Sequences reads the OTU sequence table with taxonID and Sequence
// columns. When these headers are absent the first two columns are
// used. Repeated pairs are removed.
func Sequences(path string, delim rune) ([]survey.Sequence, error) {
	rows, err := readTable(path, "", delim)
	if err != nil {
		return nil, err
	}
	rows = dropEmpty(rows)
	if len(rows) < 2 {
		return nil, InputEmptyError(path)
	}

	hdr := header(rows[0])
	idIdx, okID := hdr["taxonid"]
	seqIdx, okSeq := hdr["sequence"]
	if !okID || !okSeq {
		if len(rows[0]) < 2 {
			return nil, InputColumnError(path, "Sequence")
		}
		slog.Warn("No taxonID and Sequence headers, using first two columns",
			"file", path)
		idIdx, seqIdx = 0, 1
	}

	res := make([]survey.Sequence, 0, len(rows)-1)
	for _, row := range rows[1:] {
		res = append(res, survey.Sequence{
			TaxonID:  strings.TrimSpace(row[idIdx]),
			Sequence: strings.TrimSpace(row[seqIdx]),
		})
	}

	res = survey.DedupSequences(res)
	slog.Info("Sequences loaded", "file", path, "rows", len(res))
	return res, nil
}

// ReadCounts reads a table where the first column is the sample name
// and the second one is the number of reads after filtering. The first
// row is a header and its names are ignored.
func ReadCounts(path, sheet string) ([]survey.ReadCount, error) {
	rows, err := readTable(path, sheet, ',')
	if err != nil {
		return nil, err
	}
	rows = dropEmpty(rows)
	if len(rows) < 2 {
		return nil, InputEmptyError(path)
	}
	if len(rows[0]) < 2 {
		return nil, InputColumnError(path, "reads")
	}

	res := make([]survey.ReadCount, 0, len(rows)-1)
	for _, row := range rows[1:] {
		res = append(res, survey.ReadCount{
			Sample: strings.TrimSpace(row[0]),
			Reads:  strings.TrimSpace(row[1]),
		})
	}

	slog.Info("Read counts loaded", "file", path, "rows", len(res))
	return res, nil
}
