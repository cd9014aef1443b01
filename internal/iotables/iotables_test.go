package iotables_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/iofs"
	"github.com/gnames/gnedna/internal/iotables"
	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T, ovr, bio string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	var opts []config.Option
	if ovr != "" {
		path := filepath.Join(dir, "overrides.yaml")
		require.NoError(t, os.WriteFile(path, []byte(ovr), 0644))
		opts = append(opts, config.OptInputOverrides(path))
	}
	if bio != "" {
		path := filepath.Join(dir, "biosamples.yaml")
		require.NoError(t, os.WriteFile(path, []byte(bio), 0644))
		opts = append(opts, config.OptInputBiosamples(path))
	}
	opts = append(opts, config.OptHomeDir(dir))
	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

func TestOverrides(t *testing.T) {
	cfg := newConfig(t, `
overrides:
  - verbatim: "Diplodus sp."
    name: " Diplodus "
    id: urn:lsid:marinespecies.org:taxname:126038
  - row: 0
    name: Sparus aurata
    id: urn:lsid:marinespecies.org:taxname:151523
`, "")

	res, err := iotables.New(cfg).Overrides()
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "Diplodus sp.", res[0].Verbatim)
	assert.Nil(t, res[0].Row)
	assert.Equal(t, "Diplodus", res[0].Name)

	require.NotNil(t, res[1].Row)
	assert.Equal(t, 0, *res[1].Row)
	assert.Empty(t, res[1].Verbatim)
	assert.Equal(t, "Sparus aurata", res[1].Name)
}

func TestBiosamples(t *testing.T) {
	cfg := newConfig(t, "", `
biosamples:
  S1: " SAMN0001 "
  S2: SAMN0002
`)

	res, err := iotables.New(cfg).Biosamples()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"S1": "SAMN0001",
		"S2": "SAMN0002",
	}, res)
}

func TestMissingFiles(t *testing.T) {
	cfg := newConfig(t, "", "")
	tbl := iotables.New(cfg)

	ovr, err := tbl.Overrides()
	require.NoError(t, err)
	assert.Empty(t, ovr)

	bio, err := tbl.Biosamples()
	require.NoError(t, err)
	assert.NotNil(t, bio)
	assert.Empty(t, bio)
}

func TestDefaultTemplates(t *testing.T) {
	cfg := newConfig(t, "", "")
	require.NoError(t, iofs.EnsureDirs(cfg.HomeDir))
	require.NoError(t, iofs.EnsureOverridesFile(cfg.HomeDir))
	require.NoError(t, iofs.EnsureBiosamplesFile(cfg.HomeDir))

	tbl := iotables.New(cfg)
	ovr, err := tbl.Overrides()
	require.NoError(t, err)
	assert.Empty(t, ovr)

	bio, err := tbl.Biosamples()
	require.NoError(t, err)
	assert.Empty(t, bio)
}

func TestInvalidYAML(t *testing.T) {
	cfg := newConfig(t, "overrides: [", "biosamples: {")
	tbl := iotables.New(cfg)

	var gnErr *gn.Error
	_, err := tbl.Overrides()
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.OverridesLoadError, gnErr.Code)

	_, err = tbl.Biosamples()
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.BiosamplesLoadError, gnErr.Code)
}
