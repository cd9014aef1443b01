package iosheet

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

func InputOpenError(path string, err error) error {
	msg := "Cannot open input file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

func InputSheetError(path, sheet string, err error) error {
	msg := "Cannot read sheet <em>%s</em> of <em>%s</em>"
	vars := []any{sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputSheetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read sheet %q: %w",
			fn.Name(), sheet, err),
	}
}

func InputColumnError(path, column string) error {
	msg := `Column <em>%s</em> not found in <em>%s</em>
   Set the header name in the <em>columns</em> section of config.yaml`
	vars := []any{column, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q not found in %s",
			fn.Name(), column, path),
	}
}

func InputEmptyError(path string) error {
	msg := "Input file <em>%s</em> has no data rows"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no data in %s", fn.Name(), path),
	}
}
