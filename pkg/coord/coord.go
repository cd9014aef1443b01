// Package coord converts sexagesimal coordinates such as 41°19'41.0''N
// to decimal degrees.
package coord

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMatch is returned when a string does not look like a
// degrees-minutes-seconds coordinate with a hemisphere letter.
var ErrNoMatch = errors.New("not a degrees-minutes-seconds coordinate")

// Degree, minute and second marks vary between spreadsheets, so several
// Unicode look-alikes are accepted. Seconds may be written with a double
// quote or with two single quotes. Seconds are optional.
var dmsRe = regexp.MustCompile(
	`^\s*(\d+(?:[.,]\d+)?)\s*[°º˚]\s*` +
		`(\d+(?:[.,]\d+)?)\s*['′’‘´]\s*` +
		`(?:(\d+(?:[.,]\d+)?)\s*(?:''|′′|’’|´´|["″”“])\s*)?` +
		`([NSEWnsew])\s*$`,
)

// Coordinate keeps the components of a parsed coordinate.
type Coordinate struct {
	Degrees    float64
	Minutes    float64
	Seconds    float64
	Hemisphere byte // one of 'N', 'S', 'E', 'W'
}

// Decimal returns the unsigned value in decimal degrees.
func (c Coordinate) Decimal() float64 {
	return c.Degrees + c.Minutes/60 + c.Seconds/3600
}

// Signed returns decimal degrees that are negative for southern and
// western hemispheres.
func (c Coordinate) Signed() float64 {
	res := c.Decimal()
	if c.Hemisphere == 'S' || c.Hemisphere == 'W' {
		return -res
	}
	return res
}

// Parse extracts degrees, minutes, seconds and hemisphere from s.
func Parse(s string) (Coordinate, error) {
	var res Coordinate
	m := dmsRe.FindStringSubmatch(s)
	if m == nil {
		return res, ErrNoMatch
	}

	var err error
	if res.Degrees, err = toFloat(m[1]); err != nil {
		return res, err
	}
	if res.Minutes, err = toFloat(m[2]); err != nil {
		return res, err
	}
	if m[3] != "" {
		if res.Seconds, err = toFloat(m[3]); err != nil {
			return res, err
		}
	}
	res.Hemisphere = strings.ToUpper(m[4])[0]
	return res, nil
}

// DMSToDD returns degrees + minutes/60 + seconds/3600 for s, without
// applying the hemisphere sign. It returns NaN if s cannot be parsed.
func DMSToDD(s string) float64 {
	c, err := Parse(s)
	if err != nil {
		return math.NaN()
	}
	return c.Decimal()
}

func toFloat(s string) (float64, error) {
	s = strings.Replace(s, ",", ".", 1)
	return strconv.ParseFloat(s, 64)
}
