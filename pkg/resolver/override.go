package resolver

import (
	"fmt"

	"github.com/gnames/gnedna/pkg/survey"
)

// OverrideWarning reports an override that could not be applied.
type OverrideWarning struct {
	Override survey.Override
	Message  string
}

// ApplyOverrides returns a copy of entries with manual corrections
// applied. Entries are expected to be one per data row, so row-keyed
// overrides address entries by index.
//
// Overrides by verbatim label are applied first and overrides by row
// position last, so a row override wins when both select a record.
// Overrides always replace automated results.
func ApplyOverrides(
	entries []Entry,
	ovs []survey.Override,
) ([]Entry, []OverrideWarning) {
	res := make([]Entry, len(entries))
	copy(res, entries)

	var warns []OverrideWarning
	byLabel := make(map[string]survey.Override)
	var byRow []survey.Override
	for _, v := range ovs {
		switch {
		case v.Row != nil && v.Verbatim != "":
			warns = append(warns, OverrideWarning{
				Override: v,
				Message:  "override has both row and verbatim keys, using row",
			})
			byRow = append(byRow, v)
		case v.Row != nil:
			byRow = append(byRow, v)
		case v.Verbatim != "":
			byLabel[v.Verbatim] = v
		default:
			warns = append(warns, OverrideWarning{
				Override: v,
				Message:  "override has neither row nor verbatim key",
			})
		}
	}

	used := make(map[string]bool)
	if len(byLabel) > 0 {
		for i := range res {
			if ov, ok := byLabel[res[i].Verbatim]; ok {
				set(&res[i], ov)
				used[ov.Verbatim] = true
			}
		}
	}
	// input order keeps warnings stable between runs
	for _, v := range ovs {
		if v.Row != nil || v.Verbatim == "" || used[v.Verbatim] {
			continue
		}
		used[v.Verbatim] = true
		warns = append(warns, OverrideWarning{
			Override: byLabel[v.Verbatim],
			Message: fmt.Sprintf(
				"label %q does not occur in the data", v.Verbatim,
			),
		})
	}

	for _, v := range byRow {
		row := *v.Row
		if row < 0 || row >= len(res) {
			warns = append(warns, OverrideWarning{
				Override: v,
				Message: fmt.Sprintf(
					"row %d is outside of data rows 0..%d", row, len(res)-1,
				),
			})
			continue
		}
		set(&res[row], v)
	}

	return res, warns
}

func set(e *Entry, ov survey.Override) {
	e.Canonical = ov.Name
	e.ID = ov.ID
	e.Status = Overridden
}
