/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/iofs"
	"github.com/gnames/gnedna/internal/iologger"
	app "github.com/gnames/gnedna/pkg"
	"github.com/gnames/gnedna/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnedna",
		Short:   "Converts eDNA survey data to Darwin Core for OBIS",
		Long: `gnedna converts eDNA metabarcoding survey spreadsheets into
Darwin Core Occurrence core and DNA derived data extension files.

Species labels are parsed with GNparser and resolved against the World
Register of Marine Species (online) or a local SFGA archive (offline).
Manual corrections come from overrides.yaml, links to biosamples from
biosamples.yaml.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNEDNA_*)
  3. Config file (~/.config/gnedna/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (registry.type → GNEDNA_REGISTRY_TYPE).

  Examples:
    GNEDNA_REGISTRY_TYPE           worms or sfga
    GNEDNA_REGISTRY_SFGA_PATH      SFGA archive for offline resolution
    GNEDNA_OCCURRENCE_ID_SCHEME    md5 or uuid5
    GNEDNA_LOG_LEVEL               debug, info, warn, error`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnedna version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnedna")

	rootCmd.AddCommand(getConvertCmd())
	rootCmd.AddCommand(getResolveCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ensure := []func(string) error{
		iofs.EnsureConfigFile,
		iofs.EnsureOverridesFile,
		iofs.EnsureBiosamplesFile,
	}
	for _, fn := range ensure {
		if err = fn(homeDir); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping bootstrap records
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNEDNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.spreadsheet", "GNEDNA_INPUT_SPREADSHEET")
	v.BindEnv("input.sheet", "GNEDNA_INPUT_SHEET")
	v.BindEnv("input.sequences", "GNEDNA_INPUT_SEQUENCES")
	v.BindEnv("input.sequences_delimiter", "GNEDNA_INPUT_SEQUENCES_DELIMITER")
	v.BindEnv("input.read_counts", "GNEDNA_INPUT_READ_COUNTS")
	v.BindEnv("input.overrides", "GNEDNA_INPUT_OVERRIDES")
	v.BindEnv("input.biosamples", "GNEDNA_INPUT_BIOSAMPLES")

	// Output configuration
	v.BindEnv("output.dir", "GNEDNA_OUTPUT_DIR")
	v.BindEnv("output.delimiter", "GNEDNA_OUTPUT_DELIMITER")

	// Registry configuration
	v.BindEnv("registry.type", "GNEDNA_REGISTRY_TYPE")
	v.BindEnv("registry.url", "GNEDNA_REGISTRY_URL")
	v.BindEnv("registry.timeout", "GNEDNA_REGISTRY_TIMEOUT")
	v.BindEnv("registry.sfga_path", "GNEDNA_REGISTRY_SFGA_PATH")
	v.BindEnv("registry.id_prefix", "GNEDNA_REGISTRY_ID_PREFIX")

	// Occurrence configuration
	v.BindEnv("occurrence.id_scheme", "GNEDNA_OCCURRENCE_ID_SCHEME")
	v.BindEnv("occurrence.identification_remarks",
		"GNEDNA_OCCURRENCE_IDENTIFICATION_REMARKS")
	v.BindEnv("occurrence.associated_sequences",
		"GNEDNA_OCCURRENCE_ASSOCIATED_SEQUENCES")

	// Log configuration
	v.BindEnv("log.level", "GNEDNA_LOG_LEVEL")
	v.BindEnv("log.format", "GNEDNA_LOG_FORMAT")
	v.BindEnv("log.destination", "GNEDNA_LOG_DESTINATION")

	v.AutomaticEnv()
}
