package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnedna/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed overrides.yaml
var OverridesYAML string

//go:embed biosamples.yaml
var BiosamplesYAML string

// EnsureDirs creates configuration, cache and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureOutputDir creates the directory for conversion results.
func EnsureOutputDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureOverridesFile writes an empty overrides table with usage
// comments unless it exists.
func EnsureOverridesFile(homeDir string) error {
	return ensureFile(config.OverridesFilePath(homeDir), OverridesYAML)
}

// EnsureBiosamplesFile writes an empty biosamples table with usage
// comments unless it exists.
func EnsureBiosamplesFile(homeDir string) error {
	return ensureFile(config.BiosamplesFilePath(homeDir), BiosamplesYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
