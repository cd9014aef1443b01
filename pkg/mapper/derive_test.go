package mapper_test

import (
	"math"
	"testing"

	"github.com/gnames/gnedna/pkg/mapper"
	"github.com/stretchr/testify/assert"
)

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		msg, inp string
		res      int
	}{
		{"abbr", "Jan", 1},
		{"lower", "oct", 10},
		{"sept", "Sept", 9},
		{"sept dot", "Sept.", 9},
		{"full", "November", 11},
		{"upper", "DEC", 12},
		{"spaces", "  May ", 5},
		{"empty", "", 0},
		{"short", "ju", 0},
		{"unknown", "Spring", 0},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, mapper.MonthNumber(v.inp), v.msg)
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		msg, inp string
		res      int
	}{
		{"int", "2023", 2023},
		{"float", "2023.0", 2023},
		{"spaces", " 2021 ", 2021},
		{"fraction", "2023.5", 0},
		{"small", "23", 0},
		{"text", "n/a", 0},
		{"empty", "", 0},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, mapper.Year(v.inp), v.msg)
	}
}

func TestEventDate(t *testing.T) {
	tests := []struct {
		msg, year, month, res string
	}{
		{"sept", "2023", "Sept", "2023-09"},
		{"float year", "2022.0", "Jan", "2022-01"},
		{"no month", "2023", "", "2023"},
		{"bad month", "2023", "Summer", "2023"},
		{"bad year", "", "Jan", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, mapper.EventDate(v.year, v.month), v.msg)
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		msg, inp, minDepth, maxDepth string
	}{
		{"range", "30-45", "30", "45"},
		{"spaces", " 30 - 45 m", "30", "45"},
		{"single", "12", "12", ""},
		{"zeros", "00-05", "0", "5"},
		{"empty", "", "", ""},
		{"text", "shallow", "", ""},
	}

	for _, v := range tests {
		minDepth, maxDepth := mapper.Depth(v.inp)
		assert.Equal(t, v.minDepth, minDepth, v.msg)
		assert.Equal(t, v.maxDepth, maxDepth, v.msg)
	}
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "41.5", mapper.Decimal(41.5))
	assert.Equal(t, "-2", mapper.Decimal(-2))
	assert.Equal(t, "", mapper.Decimal(math.NaN()))
}

func TestInteger(t *testing.T) {
	tests := []struct {
		msg, inp, res string
	}{
		{"int", "123", "123"},
		{"float", "123.0", "123"},
		{"spaces", " 7 ", "7"},
		{"fraction", "1.5", "1.5"},
		{"text", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, mapper.Integer(v.inp), v.msg)
	}
}
