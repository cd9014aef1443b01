// Package iotables loads the manual override table and the biosample
// lookup table from YAML files.
package iotables

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/edna"
	"github.com/gnames/gnedna/pkg/survey"
	"gopkg.in/yaml.v3"
)

type overridesFile struct {
	Overrides []survey.Override `yaml:"overrides"`
}

type biosamplesFile struct {
	Biosamples map[string]string `yaml:"biosamples"`
}

type iotables struct {
	cfg *config.Config
}

// New creates static tables loader. File locations come from cfg.
func New(cfg *config.Config) edna.Tables {
	res := iotables{cfg: cfg}
	return &res
}

// Overrides reads the override table. A missing file means no
// overrides.
func (t *iotables) Overrides() ([]survey.Override, error) {
	path := t.cfg.OverridesPath()
	var res overridesFile
	ok, err := load(path, &res)
	if err != nil {
		return nil, OverridesLoadError(path, err)
	}
	if !ok {
		return nil, nil
	}

	for i := range res.Overrides {
		ov := &res.Overrides[i]
		ov.Name = strings.TrimSpace(ov.Name)
		ov.ID = strings.TrimSpace(ov.ID)
	}
	slog.Info("Overrides loaded", "file", path, "records", len(res.Overrides))
	return res.Overrides, nil
}

// Biosamples reads the biosample table. A missing file means no links.
func (t *iotables) Biosamples() (map[string]string, error) {
	path := t.cfg.BiosamplesPath()
	var bf biosamplesFile
	ok, err := load(path, &bf)
	if err != nil {
		return nil, BiosamplesLoadError(path, err)
	}

	res := make(map[string]string, len(bf.Biosamples))
	if !ok {
		return res, nil
	}
	for k, v := range bf.Biosamples {
		res[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	slog.Info("Biosamples loaded", "file", path, "records", len(res))
	return res, nil
}

func load(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Static table not found", "file", path)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
