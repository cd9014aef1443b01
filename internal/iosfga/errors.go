package iosfga

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

// OpenError is returned when an SFGA archive cannot be fetched or
// opened.
func OpenError(path string, err error) error {
	msg := `Cannot open SFGA archive

<em>Archive:</em> %s

<em>How to fix:</em>
  1. Check <em>registry.sfga_path</em> in config.yaml or the <em>--sfga</em> flag
  2. Supported files: .sql, .sqlite, .sql.zip, .sqlite.zip`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RegistrySFGAOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open sfga %q: %w", path, err),
	}
}

// QueryError is returned when a name lookup fails.
func QueryError(name string, err error) error {
	msg := "Cannot look up <em>%s</em> in SFGA archive"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.RegistrySFGAQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sfga query for %q: %w", name, err),
	}
}
