// Package occid generates stable occurrence identifiers from the natural
// key of an eDNA detection: OTU number, verbatim latitude, verbatim
// longitude and collection date.
package occid

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/gnames/gnuuid"
)

// Scheme selects the hash used for identifiers.
type Scheme string

const (
	// MD5 produces a 32-character hexadecimal MD5 digest.
	MD5 Scheme = "md5"
	// UUID5 produces a UUID v5 in the Global Names namespace.
	UUID5 Scheme = "uuid5"
)

// separator prevents different tuples from producing the same key,
// for example ("1", "23") and ("12", "3").
const separator = "|"

// Generator creates occurrence identifiers. It has no state, the same
// input always gives the same identifier.
type Generator struct {
	scheme Scheme
}

// New creates a Generator for the given scheme. Unknown schemes fall
// back to MD5.
func New(scheme Scheme) Generator {
	switch scheme {
	case UUID5:
		return Generator{scheme: UUID5}
	default:
		return Generator{scheme: MD5}
	}
}

// Scheme returns the hash scheme used by the generator.
func (g Generator) Scheme() Scheme {
	return g.scheme
}

// ID returns the identifier for an occurrence.
func (g Generator) ID(otu, lat, lon, date string) string {
	key := Key(otu, lat, lon, date)
	if g.scheme == UUID5 {
		return gnuuid.New(key).String()
	}
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Key joins the fields of the natural key.
func Key(otu, lat, lon, date string) string {
	return strings.Join([]string{otu, lat, lon, date}, separator)
}
