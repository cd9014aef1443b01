package mapper

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

// TaxaMismatchError is returned when the number of resolution entries
// differs from the number of detections.
func TaxaMismatchError(detections, taxa int) error {
	msg := `Taxonomic resolution does not match detections

<em>Detections:</em> %d
<em>Resolved entries:</em> %d`

	vars := []any{detections, taxa}

	return &gn.Error{
		Code: errcode.MapperTaxaMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"%d taxa for %d detections", taxa, detections,
		),
	}
}

// RowCountError is returned when mapping changed the number of rows.
func RowCountError(detections, occurrences, dna int) error {
	msg := `Mapping changed the number of records

<em>Detections:</em> %d
<em>Occurrences:</em> %d
<em>DNA derived data:</em> %d`

	vars := []any{detections, occurrences, dna}

	return &gn.Error{
		Code: errcode.MapperRowCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"row count changed from %d to %d/%d",
			detections, occurrences, dna,
		),
	}
}
