// Package dwc describes the two Darwin Core tables produced for OBIS:
// the Occurrence core and the DNA derived data extension.
//
// All values are kept as strings. An empty string is a missing value and
// is written as an empty cell.
package dwc

// Occurrence literals that are the same for every record.
const (
	OccurrenceStatus     = "present"
	BasisOfRecord        = "MaterialSample"
	OrganismQuantityType = "DNA sequence reads"
	SampleSizeUnit       = "DNA sequence reads"
)

// OccurrenceHeader is the column order of occurrence.csv.
var OccurrenceHeader = []string{
	"occurrenceID",
	"eventID",
	"eventDate",
	"decimalLatitude",
	"decimalLongitude",
	"minimumDepthInMeters",
	"maximumDepthInMeters",
	"recordedBy",
	"materialSampleID",
	"organismQuantity",
	"organismQuantityType",
	"sampleSizeValue",
	"sampleSizeUnit",
	"occurrenceStatus",
	"basisOfRecord",
	"taxonID",
	"kingdom",
	"phylum",
	"class",
	"order",
	"family",
	"genus",
	"verbatimIdentification",
	"scientificName",
	"scientificNameID",
	"identificationRemarks",
	"associatedSequences",
}

// DNADerivedHeader is the column order of dna_derived_data.csv.
var DNADerivedHeader = []string{
	"occurrenceID",
	"taxonID",
	"DNA_sequence",
	"target_gene",
	"target_subfragment",
	"pcr_primer_forward",
	"pcr_primer_reverse",
	"pcr_primer_name_forward",
	"pcr_primer_name_reverse",
	"pcr_primer_reference",
	"seq_meth",
	"otu_class_appr",
	"otu_seq_comp_appr",
	"otu_db",
	"env_medium",
}

// Occurrence is one row of the Occurrence core: a taxon detected in a
// sampling event.
type Occurrence struct {
	OccurrenceID           string
	EventID                string
	EventDate              string
	DecimalLatitude        string
	DecimalLongitude       string
	MinimumDepthInMeters   string
	MaximumDepthInMeters   string
	RecordedBy             string
	MaterialSampleID       string
	OrganismQuantity       string
	OrganismQuantityType   string
	SampleSizeValue        string
	SampleSizeUnit         string
	OccurrenceStatus       string
	BasisOfRecord          string
	TaxonID                string
	Kingdom                string
	Phylum                 string
	Class                  string
	Order                  string
	Family                 string
	Genus                  string
	VerbatimIdentification string
	ScientificName         string
	ScientificNameID       string
	IdentificationRemarks  string
	AssociatedSequences    string
}

// Row returns values in OccurrenceHeader order.
func (o Occurrence) Row() []string {
	return []string{
		o.OccurrenceID,
		o.EventID,
		o.EventDate,
		o.DecimalLatitude,
		o.DecimalLongitude,
		o.MinimumDepthInMeters,
		o.MaximumDepthInMeters,
		o.RecordedBy,
		o.MaterialSampleID,
		o.OrganismQuantity,
		o.OrganismQuantityType,
		o.SampleSizeValue,
		o.SampleSizeUnit,
		o.OccurrenceStatus,
		o.BasisOfRecord,
		o.TaxonID,
		o.Kingdom,
		o.Phylum,
		o.Class,
		o.Order,
		o.Family,
		o.Genus,
		o.VerbatimIdentification,
		o.ScientificName,
		o.ScientificNameID,
		o.IdentificationRemarks,
		o.AssociatedSequences,
	}
}

// DNADerived is one row of the DNA derived data extension. It is linked
// 1:1 to an Occurrence by OccurrenceID.
type DNADerived struct {
	OccurrenceID string
	TaxonID      string
	DNASequence  string
	Protocol
}

// Row returns values in DNADerivedHeader order.
func (d DNADerived) Row() []string {
	return []string{
		d.OccurrenceID,
		d.TaxonID,
		d.DNASequence,
		d.TargetGene,
		d.TargetSubfragment,
		d.PCRPrimerForward,
		d.PCRPrimerReverse,
		d.PCRPrimerNameForward,
		d.PCRPrimerNameReverse,
		d.PCRPrimerReference,
		d.SeqMeth,
		d.OTUClassAppr,
		d.OTUSeqCompAppr,
		d.OTUDB,
		d.EnvMedium,
	}
}

// Protocol holds sequencing and bioinformatics metadata that is copied
// unchanged into every DNA derived data row.
type Protocol struct {
	TargetGene           string `mapstructure:"target_gene"             yaml:"target_gene"`
	TargetSubfragment    string `mapstructure:"target_subfragment"      yaml:"target_subfragment"`
	PCRPrimerForward     string `mapstructure:"pcr_primer_forward"      yaml:"pcr_primer_forward"`
	PCRPrimerReverse     string `mapstructure:"pcr_primer_reverse"      yaml:"pcr_primer_reverse"`
	PCRPrimerNameForward string `mapstructure:"pcr_primer_name_forward" yaml:"pcr_primer_name_forward"`
	PCRPrimerNameReverse string `mapstructure:"pcr_primer_name_reverse" yaml:"pcr_primer_name_reverse"`
	PCRPrimerReference   string `mapstructure:"pcr_primer_reference"    yaml:"pcr_primer_reference"`
	SeqMeth              string `mapstructure:"seq_meth"                yaml:"seq_meth"`
	OTUClassAppr         string `mapstructure:"otu_class_appr"          yaml:"otu_class_appr"`
	OTUSeqCompAppr       string `mapstructure:"otu_seq_comp_appr"       yaml:"otu_seq_comp_appr"`
	OTUDB                string `mapstructure:"otu_db"                  yaml:"otu_db"`
	EnvMedium            string `mapstructure:"env_medium"              yaml:"env_medium"`
}

// Merge returns a copy of p where every non-empty field of o replaces
// the corresponding field of p. An empty field of o means "not set", so
// Merge cannot blank a field of p. Use a Protocol literal to start from
// empty values.
func (p Protocol) Merge(o Protocol) Protocol {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&p.TargetGene, o.TargetGene)
	set(&p.TargetSubfragment, o.TargetSubfragment)
	set(&p.PCRPrimerForward, o.PCRPrimerForward)
	set(&p.PCRPrimerReverse, o.PCRPrimerReverse)
	set(&p.PCRPrimerNameForward, o.PCRPrimerNameForward)
	set(&p.PCRPrimerNameReverse, o.PCRPrimerNameReverse)
	set(&p.PCRPrimerReference, o.PCRPrimerReference)
	set(&p.SeqMeth, o.SeqMeth)
	set(&p.OTUClassAppr, o.OTUClassAppr)
	set(&p.OTUSeqCompAppr, o.OTUSeqCompAppr)
	set(&p.OTUDB, o.OTUDB)
	set(&p.EnvMedium, o.EnvMedium)
	return p
}

// Dataset is the result of a conversion: two tables with the same number
// of rows, where row i of DNADerived belongs to row i of Occurrences.
type Dataset struct {
	Occurrences []Occurrence
	DNADerived  []DNADerived
}
