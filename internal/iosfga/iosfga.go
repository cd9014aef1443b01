// Package iosfga looks up scientific names in a local SFGA archive
// (Species File Group Archive) of a taxonomic source. It lets
// conversion run without network access.
package iosfga

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/sfborg/sflib"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	acceptedQuery = `
		SELECT t.col__id
		FROM taxon t
		JOIN name n ON n.col__id = t.col__name_id
		WHERE n.col__scientific_name = ?
		ORDER BY t.col__id
	`

	anyStatusQuery = `
		SELECT t.col__id
		FROM taxon t
		JOIN name n ON n.col__id = t.col__name_id
		WHERE n.col__scientific_name = ?
		UNION ALL
		SELECT s.col__id
		FROM synonym s
		JOIN name n ON n.col__id = s.col__name_id
		WHERE n.col__scientific_name = ?
	`
)

// SFGA is a registry backed by an SFGA SQLite database.
type SFGA struct {
	db     *sql.DB
	prefix string
}

// New fetches the archive from cfg.Registry.SFGAPath into the cache
// directory and opens it. The path can be a local file or a URL of a
// .sql, .sqlite, .sql.zip or .sqlite.zip archive.
func New(cfg *config.Config) (*SFGA, error) {
	src := cfg.Registry.SFGAPath
	if src == "" {
		return nil, OpenError(src, fmt.Errorf("SFGA path is not set"))
	}

	dbPath := src
	if !isLocalSQLite(src) {
		cacheDir := filepath.Join(config.CacheDir(cfg.HomeDir), "sfga")
		if err := clearCache(cacheDir); err != nil {
			return nil, OpenError(src, err)
		}

		slog.Info("Fetching SFGA archive", "source", src, "cache", cacheDir)
		arc := sflib.NewSfga()
		if err := arc.Fetch(src, cacheDir); err != nil {
			return nil, OpenError(src, err)
		}
		dbPath = arc.DbPath()
		if dbPath == "" {
			return nil, OpenError(src, fmt.Errorf("no database after fetch"))
		}
	}

	return Open(dbPath, cfg.Registry.IDPrefix)
}

// Open opens an extracted SFGA SQLite file. Identifiers are built by
// adding prefix to record IDs.
func Open(dbPath, prefix string) (*SFGA, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, OpenError(dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, OpenError(dbPath, err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, OpenError(dbPath, err)
	}

	slog.Info("SFGA registry opened", "path", dbPath)
	return &SFGA{db: db, prefix: prefix}, nil
}

// Lookup finds records with exactly the given scientific name. Accepted
// only lookups search the taxon table, others include synonyms. Fuzzy
// matching is not supported and the flag is ignored.
func (s *SFGA) Lookup(
	ctx context.Context,
	q resolver.Query,
) (resolver.Match, error) {
	var res resolver.Match
	var rows *sql.Rows
	var err error

	if q.AcceptedOnly {
		rows, err = s.db.QueryContext(ctx, acceptedQuery, q.Name)
	} else {
		rows, err = s.db.QueryContext(ctx, anyStatusQuery, q.Name, q.Name)
	}
	if err != nil {
		return res, QueryError(q.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return res, QueryError(q.Name, err)
		}
		res.IDs = append(res.IDs, s.prefix+id)
	}
	if err = rows.Err(); err != nil {
		return res, QueryError(q.Name, err)
	}

	res.Found = len(res.IDs) > 0
	return res, nil
}

// Close releases the database.
func (s *SFGA) Close() error {
	return s.db.Close()
}

func isLocalSQLite(path string) bool {
	if !strings.HasSuffix(path, ".sqlite") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// clearCache removes all files from the cache directory and ensures it
// exists.
func clearCache(cacheDir string) error {
	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("failed to remove cache directory: %w", err)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	return nil
}
