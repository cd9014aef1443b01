// Package nameparse extracts canonical scientific names from raw species
// labels with gnparser. This is a pure package - parsing is computation,
// not I/O.
package nameparse

import (
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// NameParser wraps a single gnparser instance. It is not safe for
// concurrent use.
type NameParser struct {
	gnp  gnparser.GNparser
	code nomcode.Code
}

// New creates a NameParser for the given nomenclatural code.
// Unknown code defaults to zoological, which fits marine eDNA surveys
// where most detections are animals.
func New(code nomcode.Code) *NameParser {
	if code == nomcode.Unknown {
		code = nomcode.Zoological
	}
	cfg := gnparser.NewConfig(
		gnparser.OptCode(code),
	)
	return &NameParser{
		gnp:  gnparser.New(cfg),
		code: code,
	}
}

// Code returns the nomenclatural code used for parsing.
func (p *NameParser) Code() nomcode.Code {
	return p.code
}

// Parse returns the full gnparser result for a name.
func (p *NameParser) Parse(name string) parsed.Parsed {
	return p.gnp.ParseName(name)
}

// Canonical returns the simple canonical form of a name: authorship,
// qualifiers like "cf." or "aff.", and rank markers are removed.
// Returns false if the name cannot be parsed.
func (p *NameParser) Canonical(name string) (string, bool) {
	res := p.Parse(name)
	if !res.Parsed || res.Canonical == nil {
		return "", false
	}
	return res.Canonical.Simple, res.Canonical.Simple != ""
}
