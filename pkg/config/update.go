package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	add := func(s string, fn func(string) Option) {
		if s != "" {
			res = append(res, fn(s))
		}
	}

	add(c.Input.Spreadsheet, OptInputSpreadsheet)
	add(c.Input.Sheet, OptInputSheet)
	add(c.Input.Sequences, OptInputSequences)
	add(c.Input.SequencesDelimiter, OptInputSequencesDelimiter)
	add(c.Input.ReadCounts, OptInputReadCounts)
	add(c.Input.Overrides, OptInputOverrides)
	add(c.Input.Biosamples, OptInputBiosamples)

	add(c.Output.Dir, OptOutputDir)
	add(c.Output.Delimiter, OptOutputDelimiter)

	res = append(res, OptColumns(c.Columns))

	add(c.Registry.Type, OptRegistryType)
	add(c.Registry.URL, OptRegistryURL)
	if c.Registry.Timeout > 0 {
		res = append(res, OptRegistryTimeout(c.Registry.Timeout))
	}
	add(c.Registry.SFGAPath, OptRegistrySFGAPath)
	add(c.Registry.IDPrefix, OptRegistryIDPrefix)

	add(c.Occurrence.IDScheme, OptOccurrenceIDScheme)
	add(c.Occurrence.IdentificationRemarks, OptOccurrenceIdentificationRemarks)
	add(c.Occurrence.AssociatedSequences, OptOccurrenceAssociatedSequences)

	res = append(res, OptProtocol(c.Protocol))

	add(c.Log.Format, OptLogFormat)
	add(c.Log.Level, OptLogLevel)
	add(c.Log.Destination, OptLogDestination)

	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidDelimiter(name, s string) bool {
	if s == "" || utf8.RuneCountInString(s) != 1 ||
		s == "\n" || s == "\r" || s == `"` {
		gn.Warn(
			"<em>%s</em> has to be a single character, ignoring '%s'",
			name, s,
		)
		return false
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Registry.Type":       {"worms": s, "sfga": s},
		"Occurrence.IDScheme": {"md5": s, "uuid5": s},
		"Log.Level":           {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":          {"json": s, "text": s, "tint": s},
		"Log.Destination":     {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
