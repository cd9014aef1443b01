package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnedna"

	// OccurrenceFile is the name of the Occurrence core file.
	OccurrenceFile = "occurrence.csv"

	// DNADerivedFile is the name of the DNA derived data extension file.
	DNADerivedFile = "dna_derived_data.csv"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnedna by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnedna by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnedna/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnedna/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// OverridesFilePath returns the default path to overrides.yaml.
func OverridesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "overrides.yaml")
}

// BiosamplesFilePath returns the default path to biosamples.yaml.
func BiosamplesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "biosamples.yaml")
}

// OverridesPath returns the configured overrides file or the default one.
func (c *Config) OverridesPath() string {
	if c.Input.Overrides != "" {
		return c.Input.Overrides
	}
	return OverridesFilePath(c.HomeDir)
}

// BiosamplesPath returns the configured biosamples file or the default
// one.
func (c *Config) BiosamplesPath() string {
	if c.Input.Biosamples != "" {
		return c.Input.Biosamples
	}
	return BiosamplesFilePath(c.HomeDir)
}

// OccurrencePath returns the full path of the Occurrence core file.
func (c *Config) OccurrencePath() string {
	return filepath.Join(c.Output.Dir, OccurrenceFile)
}

// DNADerivedPath returns the full path of the DNA derived data file.
func (c *Config) DNADerivedPath() string {
	return filepath.Join(c.Output.Dir, DNADerivedFile)
}
