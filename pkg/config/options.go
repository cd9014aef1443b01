package config

import (
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnedna/pkg/dwc"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputSpreadsheet sets the path to the primary detections table.
func OptInputSpreadsheet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Spreadsheet", s) {
			c.Input.Spreadsheet = s
		}
	}
}

// OptInputSheet sets the worksheet name of an .xlsx spreadsheet.
func OptInputSheet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Sheet", s) {
			c.Input.Sheet = s
		}
	}
}

// OptInputSequences sets the path to the OTU sequences table.
func OptInputSequences(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Sequences", s) {
			c.Input.Sequences = s
		}
	}
}

// OptInputSequencesDelimiter sets the field separator of the sequences
// table. It has to be a single character.
func OptInputSequencesDelimiter(s string) Option {
	return func(c *Config) {
		if isValidDelimiter("Input Sequences Delimiter", s) {
			c.Input.SequencesDelimiter = s
		}
	}
}

// OptInputReadCounts sets the path to the read counts table.
func OptInputReadCounts(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Read Counts", s) {
			c.Input.ReadCounts = s
		}
	}
}

// OptInputOverrides sets the path to the manual overrides file.
func OptInputOverrides(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Overrides", s) {
			c.Input.Overrides = s
		}
	}
}

// OptInputBiosamples sets the path to the biosample links file.
func OptInputBiosamples(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Biosamples", s) {
			c.Input.Biosamples = s
		}
	}
}

// OptOutputDir sets the directory for generated files.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputDelimiter sets the field separator of generated files.
// It has to be a single character.
func OptOutputDelimiter(s string) Option {
	return func(c *Config) {
		if isValidDelimiter("Output Delimiter", s) {
			c.Output.Delimiter = s
		}
	}
}

// OptColumns sets header names of the primary spreadsheet.
// Empty fields keep their current values.
func OptColumns(cols ColumnsConfig) Option {
	return func(c *Config) {
		c.Columns = c.Columns.merge(cols)
	}
}

// OptRegistryType sets the registry implementation.
// Valid values: "worms", "sfga".
func OptRegistryType(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Registry.Type", s) {
			c.Registry.Type = s
		}
	}
}

// OptRegistryURL sets the base URL of the WoRMS REST service.
func OptRegistryURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidString("Registry URL", s) {
			c.Registry.URL = s
		}
	}
}

// OptRegistryTimeout sets HTTP timeout in seconds.
func OptRegistryTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Registry Timeout", i) {
			c.Registry.Timeout = i
		}
	}
}

// OptRegistrySFGAPath sets the SFGA archive used by the "sfga" registry.
func OptRegistrySFGAPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Registry SFGA Path", s) {
			c.Registry.SFGAPath = s
		}
	}
}

// OptRegistryIDPrefix sets the prefix of identifiers built from SFGA
// record IDs.
func OptRegistryIDPrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Registry ID Prefix", s) {
			c.Registry.IDPrefix = s
		}
	}
}

// OptOccurrenceIDScheme sets the hash for occurrenceID.
// Valid values: "md5", "uuid5".
func OptOccurrenceIDScheme(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Occurrence.IDScheme", s) {
			c.Occurrence.IDScheme = s
		}
	}
}

// OptOccurrenceIdentificationRemarks sets identificationRemarks.
func OptOccurrenceIdentificationRemarks(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Identification Remarks", s) {
			c.Occurrence.IdentificationRemarks = s
		}
	}
}

// OptOccurrenceAssociatedSequences sets associatedSequences.
func OptOccurrenceAssociatedSequences(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Associated Sequences", s) {
			c.Occurrence.AssociatedSequences = s
		}
	}
}

// OptProtocol sets DNA derived data metadata.
// Empty fields keep their current values, so an empty value in
// config.yaml leaves the built-in default in place.
func OptProtocol(p dwc.Protocol) Option {
	return func(c *Config) {
		c.Protocol = c.Protocol.Merge(p)
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func (c ColumnsConfig) merge(o ColumnsConfig) ColumnsConfig {
	set := func(dst *string, src string) {
		src = strings.TrimSpace(src)
		if src != "" {
			*dst = src
		}
	}
	set(&c.Sample, o.Sample)
	set(&c.Method, o.Method)
	set(&c.Date, o.Date)
	set(&c.Month, o.Month)
	set(&c.Season, o.Season)
	set(&c.Year, o.Year)
	set(&c.Bathymetry, o.Bathymetry)
	set(&c.Latitude, o.Latitude)
	set(&c.Longitude, o.Longitude)
	set(&c.Reads, o.Reads)
	set(&c.OTU, o.OTU)
	set(&c.Kingdom, o.Kingdom)
	set(&c.Phylum, o.Phylum)
	set(&c.Class, o.Class)
	set(&c.Order, o.Order)
	set(&c.Family, o.Family)
	set(&c.Genus, o.Genus)
	set(&c.Species, o.Species)
	return c
}

// Rune returns the first character of a delimiter setting.
func Rune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
