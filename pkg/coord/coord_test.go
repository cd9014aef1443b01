package coord_test

import (
	"math"
	"testing"

	"github.com/gnames/gnedna/pkg/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMSToDD(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   float64
	}{
		{"double single quotes", `41°19'41.0''N`, 41 + 19.0/60 + 41.0/3600},
		{"double quote", `41°19'41.0"N`, 41 + 19.0/60 + 41.0/3600},
		{"prime marks", `8°52′3.5″W`, 8 + 52.0/60 + 3.5/3600},
		{"curly quotes", `8°52’3.5”W`, 8 + 52.0/60 + 3.5/3600},
		{"ordinal indicator", `41º19'41''N`, 41 + 19.0/60 + 41.0/3600},
		{"spaces", ` 41° 19' 41.0'' N `, 41 + 19.0/60 + 41.0/3600},
		{"decimal comma", `41°19'41,5''N`, 41 + 19.0/60 + 41.5/3600},
		{"lowercase hemisphere", `41°19'41''n`, 41 + 19.0/60 + 41.0/3600},
		{"no seconds", `41°19.5'N`, 41 + 19.5/60},
	}

	for _, v := range tests {
		res := coord.DMSToDD(v.input)
		assert.InDelta(t, v.res, res, 1e-9, v.msg)
	}

	assert.InDelta(t, 41.328056, coord.DMSToDD(`41°19'41.0''N`), 1e-6)
}

func TestDMSToDDMalformed(t *testing.T) {
	tests := []struct {
		msg   string
		input string
	}{
		{"no hemisphere", `41°19'41.0''`},
		{"empty", ""},
		{"decimal degrees", "41.328"},
		{"no degree mark", `41 19' 41'' N`},
		{"garbage", "n/a"},
		{"bad hemisphere", `41°19'41''X`},
	}

	for _, v := range tests {
		res := coord.DMSToDD(v.input)
		assert.True(t, math.IsNaN(res), v.msg)
	}
}

func TestParse(t *testing.T) {
	c, err := coord.Parse(`8°52'3.5''W`)
	require.NoError(t, err)
	assert.Equal(t, 8.0, c.Degrees)
	assert.Equal(t, 52.0, c.Minutes)
	assert.Equal(t, 3.5, c.Seconds)
	assert.Equal(t, byte('W'), c.Hemisphere)
	assert.InDelta(t, -(8 + 52.0/60 + 3.5/3600), c.Signed(), 1e-9)

	c, err = coord.Parse(`41°19'41''N`)
	require.NoError(t, err)
	assert.Greater(t, c.Signed(), 0.0)

	_, err = coord.Parse("41.3")
	assert.ErrorIs(t, err, coord.ErrNoMatch)
}
