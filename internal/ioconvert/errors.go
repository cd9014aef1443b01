package ioconvert

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

// MissingInputError is returned when a required input file is not set.
func MissingInputError(input, flag string) error {
	msg := `Input <em>%s</em> is not set

Use the <em>%s</em> flag or the <em>input</em> section of config.yaml`

	vars := []any{input, flag}

	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input %s is not set", input),
	}
}
