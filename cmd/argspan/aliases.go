package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/argspan"
	"github.com/praetorian-inc/argspan/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	aliasesSchemaPath string
	aliasesFormat     string
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List the aliases a schema declares",
	Long:  "Build the alias index for a schema and display every registered spelling with the parameter it resolves to",
	RunE:  runAliases,
}

func init() {
	aliasesCmd.Flags().StringVar(&aliasesSchemaPath, "schema", "", "Path to schema YAML file (required)")
	aliasesCmd.Flags().StringVar(&aliasesFormat, "format", "table", "Output format: table, json")
	_ = aliasesCmd.MarkFlagRequired("schema")
}

// aliasRow is one line of the aliases listing.
type aliasRow struct {
	Alias string `json:"alias"`
	Kind  string `json:"kind"`
	Param string `json:"param"`
	Arity string `json:"arity"`
}

func runAliases(cmd *cobra.Command, args []string) error {
	loader := schema.NewLoader()
	command, err := loader.LoadCommandFile(aliasesSchemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	locator, err := argspan.NewLocator(command)
	if err != nil {
		return err
	}
	index := locator.Index()

	var rows []aliasRow
	for _, a := range index.Aliases() {
		p, err := index.Resolve(a)
		if err != nil {
			return err
		}
		rows = append(rows, aliasRow{
			Alias: a.String(),
			Kind:  string(a.Kind),
			Param: p.ID,
			Arity: describeArity(p),
		})
	}

	switch aliasesFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ALIAS\tKIND\tPARAM\tARITY")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Alias, row.Kind, row.Param, row.Arity)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format: %s", aliasesFormat)
	}
}

func describeArity(p *argspan.Param) string {
	switch {
	case p.IsFlag:
		return "flag"
	case p.Unbounded():
		return fmt.Sprintf("%d..", p.MinValues)
	default:
		return fmt.Sprintf("%d..%d", p.MinValues, p.MaxValues)
	}
}
