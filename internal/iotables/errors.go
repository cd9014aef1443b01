package iotables

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

// OverridesLoadError creates an error for when overrides.yaml
// cannot be loaded.
func OverridesLoadError(path string, err error) error {
	msg := `Cannot load taxonomic overrides

<em>File:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Validate YAML syntax
  2. Compare with examples in the comments of the default file`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.OverridesLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load overrides: %w", err),
	}
}

// BiosamplesLoadError creates an error for when biosamples.yaml
// cannot be loaded.
func BiosamplesLoadError(path string, err error) error {
	msg := `Cannot load biosample links

<em>File:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.BiosamplesLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load biosamples: %w", err),
	}
}
