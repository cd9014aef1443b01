package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/gnedna/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entries = []resolver.Entry{
	{
		Verbatim:  "Diplodus sargus (Linnaeus, 1758)",
		Canonical: "Diplodus sargus",
		ID:        "urn:lsid:marinespecies.org:taxname:127053",
		Status:    resolver.Accepted,
	},
	{Verbatim: "???", Status: resolver.Unparsed},
}

func TestGetResolveCmd(t *testing.T) {
	cmd := getResolveCmd()
	assert.Equal(t, "resolve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("format"))
	assert.NotNil(t, cmd.Flags().Lookup("registry"))
	assert.NotNil(t, cmd.Flags().Lookup("sfga"))
}

func TestReadLabels(t *testing.T) {
	res, err := readLabels(strings.NewReader(
		"Diplodus sargus\r\n\n  \nGastropoda sp.\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Diplodus sargus", "Gastropoda sp."}, res)
}

func TestWriteEntriesTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEntries(&buf, entries, "tsv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "verbatim\tcanonical\tid\tstatus", lines[0])
	assert.Equal(t, "Diplodus sargus (Linnaeus, 1758)\tDiplodus sargus\t"+
		"urn:lsid:marinespecies.org:taxname:127053\taccepted", lines[1])
	assert.Equal(t, "???\t\t\tunparsed", lines[2])
}

func TestWriteEntriesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEntries(&buf, entries, "json"))

	var res []resolveOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "Diplodus sargus", res[0].Canonical)
	assert.Equal(t, "accepted", res[0].Status)
	assert.Equal(t, "unparsed", res[1].Status)
	assert.Empty(t, res[1].ID)
}
