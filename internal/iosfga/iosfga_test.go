package iosfga_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/iosfga"
	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/errcode"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const prefix = "urn:lsid:marinespecies.org:taxname:"

var schema = []string{
	`CREATE TABLE name (col__id TEXT PRIMARY KEY, col__scientific_name TEXT)`,
	`CREATE TABLE taxon (col__id TEXT PRIMARY KEY, col__name_id TEXT)`,
	`CREATE TABLE synonym (
		col__id TEXT PRIMARY KEY, col__name_id TEXT, col__taxon_id TEXT
	)`,
	`INSERT INTO name VALUES
		('n1', 'Diplodus sargus'),
		('n2', 'Sparus sargus'),
		('n3', 'Sparus aurata')`,
	`INSERT INTO taxon VALUES ('127053', 'n1'), ('151523', 'n3')`,
	`INSERT INTO synonym VALUES ('273962', 'n2', '127053')`,
}

func newSFGA(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0009.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	for _, v := range schema {
		_, err = db.Exec(v)
		require.NoError(t, err)
	}
	return path
}

func TestLookup(t *testing.T) {
	reg, err := iosfga.Open(newSFGA(t), prefix)
	require.NoError(t, err)
	defer reg.Close()
	ctx := context.Background()

	tests := []struct {
		msg   string
		q     resolver.Query
		found bool
		ids   []string
	}{
		{
			msg:   "accepted",
			q:     resolver.Query{Name: "Diplodus sargus", AcceptedOnly: true},
			found: true,
			ids:   []string{prefix + "127053"},
		},
		{
			msg:   "synonym accepted only",
			q:     resolver.Query{Name: "Sparus sargus", AcceptedOnly: true, Fuzzy: true},
			found: false,
		},
		{
			msg:   "synonym",
			q:     resolver.Query{Name: "Sparus sargus", Fuzzy: true},
			found: true,
			ids:   []string{prefix + "273962"},
		},
		{
			msg:   "accepted in any status",
			q:     resolver.Query{Name: "Sparus aurata"},
			found: true,
			ids:   []string{prefix + "151523"},
		},
		{
			msg:   "exact only",
			q:     resolver.Query{Name: "Diplodus", Fuzzy: true},
			found: false,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := reg.Lookup(ctx, v.q)
			require.NoError(t, err)
			assert.Equal(t, v.found, res.Found)
			assert.Equal(t, v.ids, res.IDs)
		})
	}
}

func TestNewLocalSQLite(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistrySFGAPath(newSFGA(t)),
		config.OptHomeDir(t.TempDir()),
	})

	reg, err := iosfga.New(cfg)
	require.NoError(t, err)
	defer reg.Close()

	r := resolver.New(reg, stubParser{})
	res, err := r.Resolve(context.Background(), []string{"Sparus sargus"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, resolver.NotAccepted, res[0].Status)
	assert.Equal(t, prefix+"273962", res[0].ID)
}

func TestOpenErrors(t *testing.T) {
	_, err := iosfga.Open(filepath.Join(t.TempDir(), "none.sqlite"), prefix)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RegistrySFGAOpenError, gnErr.Code)

	_, err = iosfga.New(config.New())
	require.Error(t, err)
}

func TestQueryError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (id TEXT)`)
	require.NoError(t, err)
	db.Close()

	reg, err := iosfga.Open(path, prefix)
	require.NoError(t, err)
	defer reg.Close()

	_, err = reg.Lookup(context.Background(), resolver.Query{Name: "Diplodus"})
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RegistrySFGAQueryError, gnErr.Code)
}

type stubParser struct{}

func (stubParser) Canonical(name string) (string, bool) {
	return name, true
}
