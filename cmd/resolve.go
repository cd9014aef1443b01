package cmd

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/ioconvert"
	"github.com/gnames/gnedna/pkg/errcode"
	"github.com/gnames/gnedna/pkg/nameparse"
	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/spf13/cobra"
)

// resolveOutput is a JSON representation of a resolved label.
type resolveOutput struct {
	Verbatim  string `json:"verbatim"`
	Canonical string `json:"canonical,omitempty"`
	ID        string `json:"id,omitempty"`
	Status    string `json:"status"`
}

// getResolveCmd returns the resolve command.
func getResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve [labels...]",
		Short: "Resolve species labels without converting files",
		Long: `Resolve species labels and print canonical names, identifiers
and resolution status. Labels come from arguments or, when there are
none, from standard input, one per line.

The output helps to build overrides.yaml for labels that cannot be
resolved automatically. Label overrides are already applied.

Examples:
  gnedna resolve "Diplodus sargus (Linnaeus, 1758)" "Gastropoda sp."
  cut -f18 data.tsv | gnedna resolve --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runResolve(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	resolveCmd.Flags().StringP(
		"format", "f", "tsv", "output format: tsv or json",
	)
	addRegistryFlags(resolveCmd)

	return resolveCmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	format, _ := cmd.Flags().GetString("format")

	labels := args
	if len(labels) == 0 {
		var err error
		if labels, err = readLabels(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if len(labels) == 0 {
		return &gn.Error{
			Code: errcode.ResolverInputError,
			Msg:  "No species labels to resolve",
			Err:  fmt.Errorf("empty input"),
		}
	}

	cfg.Update(registryOptions(cmd))
	reg, closeReg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	defer closeReg()

	prs := nameparse.New(nomcode.Zoological)
	nr := ioconvert.NewNameResolver(cfg, reg, prs)
	entries, err := nr.ResolveNames(ctx, labels)
	if err != nil {
		return err
	}

	return writeEntries(cmd.OutOrStdout(), entries, format)
}

func readLabels(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		res = append(res, line)
	}
	return res, sc.Err()
}

func writeEntries(w io.Writer, entries []resolver.Entry, format string) error {
	if format == "json" {
		out := make([]resolveOutput, len(entries))
		for i, v := range entries {
			out[i] = resolveOutput{
				Verbatim:  v.Verbatim,
				Canonical: v.Canonical,
				ID:        v.ID,
				Status:    v.Status.String(),
			}
		}
		enc := gnfmt.GNjson{Pretty: true}
		data, err := enc.Encode(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.Write([]string{"verbatim", "canonical", "id", "status"})
	for _, v := range entries {
		cw.Write([]string{v.Verbatim, v.Canonical, v.ID, v.Status.String()})
	}
	cw.Flush()
	return cw.Error()
}
