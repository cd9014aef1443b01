package occid_test

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/gnames/gnedna/pkg/occid"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
)

const (
	lat = `41°19'41.0''N`
	lon = `8°52'3.5''W`
)

func TestDeterministic(t *testing.T) {
	for _, s := range []occid.Scheme{occid.MD5, occid.UUID5} {
		g := occid.New(s)
		id1 := g.ID("12", lat, lon, "2023-09-14")
		id2 := g.ID("12", lat, lon, "2023-09-14")
		assert.Equal(t, id1, id2, string(s))

		// a fresh generator gives the same value
		id3 := occid.New(s).ID("12", lat, lon, "2023-09-14")
		assert.Equal(t, id1, id3, string(s))
	}
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		msg  string
		a, b [4]string
	}{
		{
			msg: "different otu",
			a:   [4]string{"12", lat, lon, "2023-09-14"},
			b:   [4]string{"13", lat, lon, "2023-09-14"},
		},
		{
			msg: "different date",
			a:   [4]string{"12", lat, lon, "2023-09-14"},
			b:   [4]string{"12", lat, lon, "2023-09-15"},
		},
		{
			msg: "different longitude",
			a:   [4]string{"12", lat, lon, "2023-09-14"},
			b:   [4]string{"12", lat, `8°52'3.6''W`, "2023-09-14"},
		},
		{
			msg: "colliding prefix",
			a:   [4]string{"1", "23" + lat, lon, "2023-09-14"},
			b:   [4]string{"12", "3" + lat, lon, "2023-09-14"},
		},
		{
			msg: "shifted boundary at the end",
			a:   [4]string{"12", lat, lon + "2", "023-09-14"},
			b:   [4]string{"12", lat, lon, "2023-09-14"},
		},
	}

	for _, s := range []occid.Scheme{occid.MD5, occid.UUID5} {
		g := occid.New(s)
		for _, v := range tests {
			idA := g.ID(v.a[0], v.a[1], v.a[2], v.a[3])
			idB := g.ID(v.b[0], v.b[1], v.b[2], v.b[3])
			assert.NotEqual(t, idA, idB, v.msg)
		}
	}
}

func TestFormat(t *testing.T) {
	md5Re := regexp.MustCompile(`^[0-9a-f]{32}$`)
	id := occid.New(occid.MD5).ID("1", lat, lon, "2023")
	assert.Regexp(t, md5Re, id)

	id = occid.New(occid.UUID5).ID("1", lat, lon, "2023")
	exp := gnuuid.New(occid.Key("1", lat, lon, "2023")).String()
	assert.Equal(t, exp, id)
}

func TestMD5OfJoinedKey(t *testing.T) {
	sum := md5.Sum([]byte("a|b|c|d"))
	id := occid.New(occid.MD5).ID("a", "b", "c", "d")
	assert.Equal(t, hex.EncodeToString(sum[:]), id)
}

func TestUnknownScheme(t *testing.T) {
	g := occid.New("sha256")
	assert.Equal(t, occid.MD5, g.Scheme())
}
