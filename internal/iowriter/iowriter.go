// Package iowriter saves Darwin Core tables as delimited UTF-8 text.
package iowriter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnedna/pkg/dwc"
)

// Writer writes tables with a header row and no index column. Missing
// values are empty strings.
type Writer struct {
	delim rune
}

// New creates a Writer that separates fields with delim.
func New(delim rune) *Writer {
	if delim == 0 {
		delim = ','
	}
	return &Writer{delim: delim}
}

// WriteDataset writes the Occurrence core to occPath and the DNA derived
// data extension to dnaPath.
func (w *Writer) WriteDataset(ds *dwc.Dataset, occPath, dnaPath string) error {
	occ := make([][]string, len(ds.Occurrences))
	for i, v := range ds.Occurrences {
		occ[i] = v.Row()
	}
	if err := w.WriteTable(occPath, dwc.OccurrenceHeader, occ); err != nil {
		return err
	}

	dna := make([][]string, len(ds.DNADerived))
	for i, v := range ds.DNADerived {
		dna[i] = v.Row()
	}
	return w.WriteTable(dnaPath, dwc.DNADerivedHeader, dna)
}

// WriteTable writes header and rows to path. Data goes to a temporary
// file in the same directory first, so an existing file is replaced only
// by a complete table.
func (w *Writer) WriteTable(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateError(path, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return CreateError(path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	cw := csv.NewWriter(f)
	cw.Comma = w.delim

	if err = cw.Write(header); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = cw.WriteAll(rows); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return WriteError(path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Table saved", "file", path, "rows", len(rows))
	return nil
}
