// Package iosheet reads survey inputs from xlsx spreadsheets and
// delimited text files.
package iosheet

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readTable returns all rows of a file. For xlsx files the given sheet
// is read, or the first one when sheet is empty. Other files are read
// as delimited text, tab-delimited for .tsv and delim otherwise.
// Rows are padded to the width of the widest row.
func readTable(path, sheet string, delim rune) ([][]string, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, sheet)
	case ".tsv", ".tab":
		rows, err = readDelimited(path, '\t')
	default:
		rows, err = readDelimited(path, delim)
	}
	if err != nil {
		return nil, err
	}
	return pad(rows), nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, InputOpenError(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, InputEmptyError(path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, InputSheetError(path, sheet, err)
	}
	return rows, nil
}

func readDelimited(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, InputOpenError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var res [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, InputOpenError(path, err)
		}
		res = append(res, row)
	}
	return res, nil
}

func pad(rows [][]string) [][]string {
	var width int
	for _, v := range rows {
		width = max(width, len(v))
	}
	for i, v := range rows {
		if len(v) < width {
			row := make([]string, width)
			copy(row, v)
			rows[i] = row
		}
	}
	return rows
}

// dropEmpty removes rows where every cell is blank.
func dropEmpty(rows [][]string) [][]string {
	res := rows[:0]
	for _, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				res = append(res, row)
				break
			}
		}
	}
	return res
}

// header maps normalized column names to their positions. The first
// occurrence of a repeated name wins.
func header(row []string) map[string]int {
	res := make(map[string]int, len(row))
	for i, v := range row {
		k := normalize(v)
		if _, ok := res[k]; ok {
			continue
		}
		res[k] = i
	}
	return res
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}
