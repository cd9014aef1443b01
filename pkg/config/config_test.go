package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/dwc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnedna"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnedna"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnedna", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnedna", "config.yaml"),
		},
		{
			msg: "overrides file",
			fn:  config.OverridesFilePath,
			res: filepath.Join(tempHome, ".config", "gnedna", "overrides.yaml"),
		},
		{
			msg: "biosamples file",
			fn:  config.BiosamplesFilePath,
			res: filepath.Join(tempHome, ".config", "gnedna", "biosamples.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, ";", cfg.Input.SequencesDelimiter)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, ",", cfg.Output.Delimiter)
	assert.Equal(t, "Species", cfg.Columns.Species)
	assert.Equal(t, "Collection method", cfg.Columns.Method)

	assert.Equal(t, "worms", cfg.Registry.Type)
	assert.Equal(t, "https://www.marinespecies.org/rest", cfg.Registry.URL)
	assert.Equal(t, 30, cfg.Registry.Timeout)
	assert.Equal(t, "urn:lsid:marinespecies.org:taxname:", cfg.Registry.IDPrefix)

	assert.Equal(t, "md5", cfg.Occurrence.IDScheme)
	assert.NotEmpty(t, cfg.Occurrence.IdentificationRemarks)
	assert.Equal(t, "COI", cfg.Protocol.TargetGene)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestOptionsValid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputSpreadsheet("  data.xlsx "),
		config.OptInputSheet("Sheet2"),
		config.OptInputSequences("seqs.csv"),
		config.OptInputSequencesDelimiter("\t"),
		config.OptInputReadCounts("reads.xlsx"),
		config.OptInputOverrides("ovr.yaml"),
		config.OptInputBiosamples("bio.yaml"),
		config.OptOutputDir("out"),
		config.OptOutputDelimiter(";"),
		config.OptRegistryType(" SFGA "),
		config.OptRegistryURL("http://localhost:8080/rest/"),
		config.OptRegistryTimeout(5),
		config.OptRegistrySFGAPath("0009.sqlite"),
		config.OptRegistryIDPrefix("worms:"),
		config.OptOccurrenceIDScheme("UUID5"),
		config.OptOccurrenceIdentificationRemarks("remarks"),
		config.OptOccurrenceAssociatedSequences("PRJNA1"),
		config.OptLogLevel("DEBUG"),
		config.OptLogFormat("tint"),
		config.OptLogDestination("stderr"),
		config.OptHomeDir("/home/test"),
	})

	assert.Equal(t, "data.xlsx", cfg.Input.Spreadsheet)
	assert.Equal(t, "Sheet2", cfg.Input.Sheet)
	assert.Equal(t, "seqs.csv", cfg.Input.Sequences)
	assert.Equal(t, "\t", cfg.Input.SequencesDelimiter)
	assert.Equal(t, "reads.xlsx", cfg.Input.ReadCounts)
	assert.Equal(t, "ovr.yaml", cfg.OverridesPath())
	assert.Equal(t, "bio.yaml", cfg.BiosamplesPath())
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, ";", cfg.Output.Delimiter)
	assert.Equal(t, "sfga", cfg.Registry.Type)
	assert.Equal(t, "http://localhost:8080/rest", cfg.Registry.URL)
	assert.Equal(t, 5, cfg.Registry.Timeout)
	assert.Equal(t, "0009.sqlite", cfg.Registry.SFGAPath)
	assert.Equal(t, "worms:", cfg.Registry.IDPrefix)
	assert.Equal(t, "uuid5", cfg.Occurrence.IDScheme)
	assert.Equal(t, "remarks", cfg.Occurrence.IdentificationRemarks)
	assert.Equal(t, "PRJNA1", cfg.Occurrence.AssociatedSequences)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "tint", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, "/home/test", cfg.HomeDir)
	assert.Equal(t, filepath.Join("out", "occurrence.csv"), cfg.OccurrencePath())
	assert.Equal(t,
		filepath.Join("out", "dna_derived_data.csv"), cfg.DNADerivedPath())
}

func TestOptionsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputSpreadsheet("  "),
		config.OptInputSequencesDelimiter(";;"),
		config.OptOutputDelimiter(""),
		config.OptOutputDelimiter(`"`),
		config.OptRegistryType("gbif"),
		config.OptRegistryTimeout(0),
		config.OptOccurrenceIDScheme("sha1"),
		config.OptLogLevel("verbose"),
		config.OptLogFormat("xml"),
		config.OptLogDestination("syslog"),
	})

	def := config.New()
	assert.Equal(t, def, cfg, "invalid options leave config unchanged")
}

func TestDefaultPaths(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/test")})
	assert.Equal(t, config.OverridesFilePath("/home/test"), cfg.OverridesPath())
	assert.Equal(t, config.BiosamplesFilePath("/home/test"), cfg.BiosamplesPath())
}

func TestOptColumns(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptColumns(config.ColumnsConfig{
			Species: "Species name",
			OTU:     " OTU number ",
		}),
	})
	assert.Equal(t, "Species name", cfg.Columns.Species)
	assert.Equal(t, "OTU number", cfg.Columns.OTU)
	assert.Equal(t, "Sample", cfg.Columns.Sample, "empty fields are kept")
}

func TestOptProtocol(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptProtocol(dwc.Protocol{TargetGene: "12S rRNA"}),
	})
	assert.Equal(t, "12S rRNA", cfg.Protocol.TargetGene)
	assert.Equal(t, "mlCOIintF", cfg.Protocol.PCRPrimerNameForward)
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptInputSpreadsheet("data.xlsx"),
		config.OptRegistryType("sfga"),
		config.OptRegistrySFGAPath("0009.sqlite"),
		config.OptOccurrenceIDScheme("uuid5"),
		config.OptOccurrenceAssociatedSequences("PRJNA1"),
		config.OptColumns(config.ColumnsConfig{Species: "Taxon"}),
		config.OptProtocol(dwc.Protocol{SeqMeth: "NovaSeq"}),
		config.OptLogFormat("text"),
		config.OptHomeDir("/home/test"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
	dst.Update([]config.Option{config.OptHomeDir("/home/test")})
	assert.Equal(t, src, dst)
}

func TestRune(t *testing.T) {
	assert.Equal(t, ';', config.Rune(";"))
	assert.Equal(t, '\t', config.Rune("\t"))
	assert.Equal(t, rune(0x1F600), config.Rune("😀"))
}
