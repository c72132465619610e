package schema

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("tool", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "verbose output")
	fs.StringP("output", "o", "", "output path")
	fs.StringSlice("include", nil, "include patterns")

	cmd := FromFlagSet("tool", fs)
	require.Len(t, cmd.Params, 3)

	byID := make(map[string]int)
	for i, p := range cmd.Params {
		byID[p.ID] = i
	}

	verbose := cmd.Params[byID["verbose"]]
	assert.True(t, verbose.IsFlag)
	assert.Equal(t, []string{"verbose"}, verbose.Long)
	assert.Equal(t, []rune{'v'}, verbose.Short)

	output := cmd.Params[byID["output"]]
	assert.False(t, output.IsFlag)
	assert.Equal(t, 1, output.MaxValues)

	include := cmd.Params[byID["include"]]
	assert.True(t, include.Unbounded())
	assert.Empty(t, include.Short)
}

func TestFromFlagSetValidates(t *testing.T) {
	fs := pflag.NewFlagSet("tool", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")

	cmd := FromFlagSet("tool", fs)
	assert.NoError(t, ValidateCommand(cmd))
}

func TestFromCommand(t *testing.T) {
	root := &cobra.Command{Use: "tool"}
	root.PersistentFlags().BoolP("verbose", "v", false, "")

	scan := &cobra.Command{Use: "scan", Aliases: []string{"s"}}
	scan.Flags().String("depth", "", "")
	root.AddCommand(scan)

	cmd := FromCommand(root)
	require.Len(t, cmd.Params, 1)
	assert.Equal(t, "verbose", cmd.Params[0].ID)

	require.Len(t, cmd.Subcommands, 1)
	sub := cmd.Subcommands[0]
	assert.Equal(t, "scan", sub.Name)
	assert.Equal(t, []string{"s"}, sub.Aliases)

	ids := make(map[string]bool)
	for _, p := range sub.Params {
		ids[p.ID] = true
	}
	assert.True(t, ids["depth"], "subcommand keeps its own flags")
	assert.True(t, ids["verbose"], "subcommand inherits parent flags")
}
