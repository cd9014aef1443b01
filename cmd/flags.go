package cmd

import (
	"github.com/gnames/gnedna/pkg/config"
	"github.com/spf13/cobra"
)

type flagOption struct {
	name string
	opt  func(string) config.Option
}

// convertFlags maps string flags of the convert command to config
// options.
var convertFlags = []flagOption{
	{"input", config.OptInputSpreadsheet},
	{"sheet", config.OptInputSheet},
	{"sequences", config.OptInputSequences},
	{"read-counts", config.OptInputReadCounts},
	{"overrides", config.OptInputOverrides},
	{"biosamples", config.OptInputBiosamples},
	{"output", config.OptOutputDir},
	{"delimiter", config.OptOutputDelimiter},
	{"id-scheme", config.OptOccurrenceIDScheme},
	{"associated-sequences", config.OptOccurrenceAssociatedSequences},
}

// registryFlags are shared by convert and resolve commands.
var registryFlags = []flagOption{
	{"registry", config.OptRegistryType},
	{"sfga", config.OptRegistrySFGAPath},
	{"url", config.OptRegistryURL},
}

func addRegistryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"registry", "r", "", "name registry: worms or sfga",
	)
	cmd.Flags().String(
		"sfga", "", "path or URL of an SFGA archive (implies -r sfga)",
	)
	cmd.Flags().String(
		"url", "", "URL of the WoRMS REST service",
	)
}

// flagOptions returns options for flags explicitly set by the user.
func flagOptions(cmd *cobra.Command, flags []flagOption) []config.Option {
	var res []config.Option
	for _, v := range flags {
		if !cmd.Flags().Changed(v.name) {
			continue
		}
		s, err := cmd.Flags().GetString(v.name)
		if err != nil {
			continue
		}
		res = append(res, v.opt(s))
	}
	return res
}

// registryOptions returns options of registry flags. An archive path
// without explicit registry selects the sfga registry.
func registryOptions(cmd *cobra.Command) []config.Option {
	res := flagOptions(cmd, registryFlags)
	if cmd.Flags().Changed("sfga") && !cmd.Flags().Changed("registry") {
		res = append(res, config.OptRegistryType("sfga"))
	}
	return res
}
