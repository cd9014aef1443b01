// Package survey contains records read from the eDNA survey inputs and
// the static tables curated alongside them.
package survey

// Detection is one row of the primary spreadsheet: a taxon (OTU) detected
// in a sample.
type Detection struct {
	// Row is the 0-based position of the record among data rows of
	// the spreadsheet. The header row is not counted.
	Row int

	Sample     string
	Method     string
	Date       string
	Month      string
	Season     string
	Year       string
	Bathymetry string
	Latitude   string
	Longitude  string
	Reads      string
	OTU        string

	Kingdom string
	Phylum  string
	Class   string
	Order   string
	Family  string
	Genus   string

	// Species is the raw species label. It may contain authorship
	// and qualifiers such as "cf." or "sp.".
	Species string
}

// Sequence links an OTU number to its representative nucleotide sequence.
type Sequence struct {
	TaxonID  string
	Sequence string
}

// ReadCount is the number of reads left after filtering for a sample.
type ReadCount struct {
	Sample string
	Reads  string
}

// Override is a manual correction of a taxonomic resolution.
// Exactly one of Row or Verbatim selects the affected records.
type Override struct {
	// Row is the 0-based data row position the override applies to.
	Row *int `yaml:"row,omitempty"`

	// Verbatim is the raw species label the override applies to.
	Verbatim string `yaml:"verbatim,omitempty"`

	// Name is the scientific name to use.
	Name string `yaml:"name"`

	// ID is the scientific name identifier to use.
	ID string `yaml:"id"`
}

// DedupSequences removes repeated (TaxonID, Sequence) pairs keeping the
// first occurrence order.
func DedupSequences(seqs []Sequence) []Sequence {
	seen := make(map[Sequence]struct{}, len(seqs))
	res := make([]Sequence, 0, len(seqs))
	for _, v := range seqs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
