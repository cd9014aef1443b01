// Package config provides configuration management for GNedna.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions and config.yaml):
//   - Input: spreadsheet, sheet, sequences, sequences_delimiter, read_counts,
//     overrides, biosamples
//   - Output: dir, delimiter
//   - Columns: header names of the primary spreadsheet
//   - Registry: type, url, timeout, sfga_path, id_prefix
//   - Occurrence: id_scheme, identification_remarks, associated_sequences
//   - Protocol: DNA derived data metadata
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNEDNA_ prefix with underscores for nesting:
//
//	GNEDNA_REGISTRY_TYPE=sfga
//	GNEDNA_REGISTRY_SFGA_PATH=~/data/0009.sqlite.zip
//	GNEDNA_LOG_LEVEL=debug
package config

import (
	"github.com/gnames/gnedna/pkg/dwc"
)

// Config represents the complete GNedna configuration.
type Config struct {
	// Input contains locations of the survey data.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output contains settings for the generated Darwin Core files.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Columns maps fields of a detection to header names of the
	// primary spreadsheet.
	Columns ColumnsConfig `mapstructure:"columns" yaml:"columns"`

	// Registry contains settings of the taxonomic name registry.
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`

	// Occurrence contains settings for the Occurrence core.
	Occurrence OccurrenceConfig `mapstructure:"occurrence" yaml:"occurrence"`

	// Protocol is sequencing metadata copied to every DNA derived
	// data record.
	Protocol dwc.Protocol `mapstructure:"protocol" yaml:"protocol"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig contains paths to input files.
type InputConfig struct {
	// Spreadsheet is the primary detections table (.xlsx, .csv or .tsv).
	Spreadsheet string `mapstructure:"spreadsheet" yaml:"spreadsheet"`

	// Sheet is the worksheet name of an .xlsx file. Empty means the
	// first sheet.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// Sequences is the table of OTU sequences with taxonID and
	// Sequence columns.
	Sequences string `mapstructure:"sequences" yaml:"sequences"`

	// SequencesDelimiter separates fields of the sequences table.
	SequencesDelimiter string `mapstructure:"sequences_delimiter" yaml:"sequences_delimiter"`

	// ReadCounts is the table of filtered read counts per sample.
	ReadCounts string `mapstructure:"read_counts" yaml:"read_counts"`

	// Overrides is the path to the manual overrides YAML file.
	// Empty means overrides.yaml in the config directory.
	Overrides string `mapstructure:"overrides" yaml:"overrides"`

	// Biosamples is the path to the biosample links YAML file.
	// Empty means biosamples.yaml in the config directory.
	Biosamples string `mapstructure:"biosamples" yaml:"biosamples"`
}

// OutputConfig contains settings for output files.
type OutputConfig struct {
	// Dir is the directory for occurrence.csv and dna_derived_data.csv.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Delimiter separates fields of output files.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// ColumnsConfig contains header names of the primary spreadsheet.
type ColumnsConfig struct {
	Sample     string `mapstructure:"sample"     yaml:"sample"`
	Method     string `mapstructure:"method"     yaml:"method"`
	Date       string `mapstructure:"date"       yaml:"date"`
	Month      string `mapstructure:"month"      yaml:"month"`
	Season     string `mapstructure:"season"     yaml:"season"`
	Year       string `mapstructure:"year"       yaml:"year"`
	Bathymetry string `mapstructure:"bathymetry" yaml:"bathymetry"`
	Latitude   string `mapstructure:"latitude"   yaml:"latitude"`
	Longitude  string `mapstructure:"longitude"  yaml:"longitude"`
	Reads      string `mapstructure:"reads"      yaml:"reads"`
	OTU        string `mapstructure:"otu"        yaml:"otu"`
	Kingdom    string `mapstructure:"kingdom"    yaml:"kingdom"`
	Phylum     string `mapstructure:"phylum"     yaml:"phylum"`
	Class      string `mapstructure:"class"      yaml:"class"`
	Order      string `mapstructure:"order"      yaml:"order"`
	Family     string `mapstructure:"family"     yaml:"family"`
	Genus      string `mapstructure:"genus"      yaml:"genus"`
	Species    string `mapstructure:"species"    yaml:"species"`
}

// RegistryConfig contains settings of the taxonomic name registry.
type RegistryConfig struct {
	// Type is "worms" (WoRMS REST service) or "sfga" (local SFGA
	// archive).
	Type string `mapstructure:"type" yaml:"type"`

	// URL is the base URL of the WoRMS REST service.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout is the HTTP timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// SFGAPath is a local path or URL of an SFGA archive
	// (.sqlite, .sql, optionally zipped).
	SFGAPath string `mapstructure:"sfga_path" yaml:"sfga_path"`

	// IDPrefix is prepended to SFGA record IDs to build
	// scientificNameID values.
	IDPrefix string `mapstructure:"id_prefix" yaml:"id_prefix"`
}

// OccurrenceConfig contains settings of the Occurrence core.
type OccurrenceConfig struct {
	// IDScheme is the hash used for occurrenceID: "md5" or "uuid5".
	IDScheme string `mapstructure:"id_scheme" yaml:"id_scheme"`

	// IdentificationRemarks is copied to every occurrence.
	IdentificationRemarks string `mapstructure:"identification_remarks" yaml:"identification_remarks"`

	// AssociatedSequences is copied to every occurrence.
	AssociatedSequences string `mapstructure:"associated_sequences" yaml:"associated_sequences"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			SequencesDelimiter: ";",
		},
		Output: OutputConfig{
			Dir:       ".",
			Delimiter: ",",
		},
		Columns: ColumnsConfig{
			Sample:     "Sample",
			Method:     "Collection method",
			Date:       "Date",
			Month:      "Month",
			Season:     "Season",
			Year:       "Year",
			Bathymetry: "Bathymetry",
			Latitude:   "Latitude",
			Longitude:  "Longitude",
			Reads:      "Reads",
			OTU:        "OTU",
			Kingdom:    "Kingdom",
			Phylum:     "Phylum",
			Class:      "Class",
			Order:      "Order",
			Family:     "Family",
			Genus:      "Genus",
			Species:    "Species",
		},
		Registry: RegistryConfig{
			Type:     "worms",
			URL:      "https://www.marinespecies.org/rest",
			Timeout:  30,
			IDPrefix: "urn:lsid:marinespecies.org:taxname:",
		},
		Occurrence: OccurrenceConfig{
			IDScheme: "md5",
			IdentificationRemarks: "Taxonomic assignment of COI OTUs " +
				"by similarity search against BOLD and NCBI GenBank",
		},
		Protocol: dwc.Protocol{
			TargetGene:           "COI",
			PCRPrimerForward:     "GGWACWGGWTGAACWGTWTAYCCYCC",
			PCRPrimerReverse:     "TAIACYTCIGGRTGICCRAARAAYCA",
			PCRPrimerNameForward: "mlCOIintF",
			PCRPrimerNameReverse: "jgHCO2198",
			PCRPrimerReference:   "https://doi.org/10.1186/1742-9994-10-34",
			SeqMeth:              "Illumina MiSeq",
			OTUClassAppr:         "VSEARCH clustering at 97% similarity",
			OTUSeqCompAppr:       "BLASTn",
			OTUDB:                "BOLD; NCBI GenBank",
			EnvMedium:            "sea water [ENVO:00002149]",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
