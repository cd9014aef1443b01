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
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/ioconvert"
	"github.com/gnames/gnedna/pkg/nameparse"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/spf13/cobra"
)

// getConvertCmd returns the convert command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getConvertCmd() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert eDNA survey data to Darwin Core files",
		Long: `Convert an eDNA survey spreadsheet to Darwin Core files for OBIS.

This command:
  1. Reads detections from the primary spreadsheet (.xlsx, .csv, .tsv)
  2. Reads OTU sequences and filtered read counts
  3. Parses species labels and resolves them against WoRMS or an
     SFGA archive, accepted names first
  4. Applies manual corrections from overrides.yaml
  5. Converts coordinates, dates and depths, builds occurrenceID
  6. Writes occurrence.csv and dna_derived_data.csv

Static tables are in ~/.config/gnedna (overrides.yaml, biosamples.yaml).

Examples:
  # Resolve names with WoRMS
  gnedna convert -i data.xlsx -s seqs.csv -c reads.xlsx -o out

  # Resolve names offline with a local SFGA archive
  gnedna convert -i data.xlsx -s seqs.csv -c reads.xlsx --sfga 0009.sqlite

  # Use UUID v5 occurrence identifiers
  gnedna convert -i data.xlsx --id-scheme uuid5`,
		Aliases: []string{"conv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConvert(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	convertCmd.Flags().StringP(
		"input", "i", "", "primary spreadsheet with detections",
	)
	convertCmd.Flags().String(
		"sheet", "", "sheet name of the primary spreadsheet",
	)
	convertCmd.Flags().StringP(
		"sequences", "s", "", "table with OTU sequences",
	)
	convertCmd.Flags().StringP(
		"read-counts", "c", "", "spreadsheet with filtered read counts",
	)
	convertCmd.Flags().String(
		"overrides", "", "YAML file with taxonomic overrides",
	)
	convertCmd.Flags().String(
		"biosamples", "", "YAML file with biosample links",
	)
	convertCmd.Flags().StringP(
		"output", "o", "", "output directory",
	)
	convertCmd.Flags().StringP(
		"delimiter", "d", "", "output field delimiter",
	)
	convertCmd.Flags().String(
		"id-scheme", "", "occurrenceID scheme: md5 or uuid5",
	)
	convertCmd.Flags().String(
		"associated-sequences", "", "value of associatedSequences",
	)
	addRegistryFlags(convertCmd)

	return convertCmd
}

func runConvert(cmd *cobra.Command) error {
	ctx := context.Background()

	cfg.Update(flagOptions(cmd, convertFlags))
	cfg.Update(registryOptions(cmd))

	reg, closeReg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	defer closeReg()

	prs := nameparse.New(nomcode.Zoological)
	conv := ioconvert.New(cfg, reg, prs)

	sum, err := conv.Convert(ctx)
	if err != nil {
		slog.Error("Conversion failed", "error", err)
		return err
	}

	ioconvert.Report(sum)
	return nil
}
