// Package ioworms looks up scientific names in the World Register of
// Marine Species REST web service.
package ioworms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/gnames/gnfmt"
)

// record keeps the fields of an AphiaRecord used for resolution.
type record struct {
	AphiaID        int    `json:"AphiaID"`
	ScientificName string `json:"scientificname"`
	Authority      string `json:"authority"`
	Status         string `json:"status"`
	Rank           string `json:"rank"`
	ValidAphiaID   int    `json:"valid_AphiaID"`
	ValidName      string `json:"valid_name"`
	LSID           string `json:"lsid"`
	MatchType      string `json:"match_type"`
}

type ioworms struct {
	url    string
	prefix string
	client *http.Client
}

// New creates a WoRMS registry client from the registry settings.
func New(cfg config.RegistryConfig) resolver.Registry {
	res := ioworms{
		url:    strings.TrimRight(cfg.URL, "/"),
		prefix: cfg.IDPrefix,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
	return &res
}

// Lookup calls AphiaRecordsByName. No content means the name is
// unknown. Any other status besides OK is an error.
func (w *ioworms) Lookup(
	ctx context.Context,
	q resolver.Query,
) (resolver.Match, error) {
	var res resolver.Match

	u := fmt.Sprintf(
		"%s/AphiaRecordsByName/%s?like=%t&marine_only=false",
		w.url, url.PathEscape(q.Name), q.Fuzzy,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return res, TransportError(q.Name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return res, TransportError(q.Name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		slog.Debug("WoRMS has no records", "name", q.Name, "fuzzy", q.Fuzzy)
		return res, nil
	default:
		return res, StatusError(q.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, TransportError(q.Name, err)
	}

	var recs []record
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &recs); err != nil {
		return res, DecodeError(q.Name, err)
	}

	res.IDs = w.ids(q, recs)
	res.Found = len(res.IDs) > 0
	return res, nil
}

// ids returns identifiers of suitable records. Records with exactly the
// queried name go first.
func (w *ioworms) ids(q resolver.Query, recs []record) []string {
	var exact, other []string
	for _, v := range recs {
		if q.AcceptedOnly && v.Status != "accepted" {
			continue
		}
		id := w.id(v)
		if id == "" {
			continue
		}
		if v.ScientificName == q.Name {
			exact = append(exact, id)
		} else {
			other = append(other, id)
		}
	}
	return append(exact, other...)
}

func (w *ioworms) id(r record) string {
	if r.LSID != "" {
		return r.LSID
	}
	if r.AphiaID > 0 {
		return fmt.Sprintf("%s%d", w.prefix, r.AphiaID)
	}
	return ""
}
