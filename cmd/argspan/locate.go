package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/praetorian-inc/argspan"
	"github.com/praetorian-inc/argspan/pkg/highlight"
	"github.com/praetorian-inc/argspan/pkg/locate"
	"github.com/praetorian-inc/argspan/pkg/schema"
	"github.com/praetorian-inc/argspan/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	locateSchemaPath string
	locateTargets    string
	locateLimit      int
	locateRole       string
	locateFormat     string
	locateColor      string
	locateSanitize   bool
)

var locateCmd = &cobra.Command{
	Use:   "locate [tokens...]",
	Short: "Locate parameter spans in a command line",
	Long: `Scan the given tokens against a schema and print the byte spans occupied by
the requested target parameters. Tokens after -- are taken verbatim.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateSchemaPath, "schema", "", "Path to schema YAML file (required)")
	locateCmd.Flags().StringVar(&locateTargets, "target", "", "Target parameter IDs, comma-separated (required)")
	locateCmd.Flags().IntVar(&locateLimit, "limit", 1, "Maximum occurrences reported per target")
	locateCmd.Flags().StringVar(&locateRole, "role", "all", "Part to underline: declaration, name, delimiter, content, all")
	locateCmd.Flags().StringVar(&locateFormat, "format", "human", "Output format: human, json")
	locateCmd.Flags().StringVar(&locateColor, "color", "auto", "Color output: auto, always, never")
	locateCmd.Flags().BoolVar(&locateSanitize, "sanitize", false, "Count bytes after replacing invalid UTF-8 with U+FFFD")
	_ = locateCmd.MarkFlagRequired("schema")
	_ = locateCmd.MarkFlagRequired("target")
}

func runLocate(cmd *cobra.Command, args []string) error {
	targets := splitTargets(locateTargets)
	if len(targets) == 0 {
		return fmt.Errorf("no targets given")
	}

	role, err := highlight.ParseRole(locateRole)
	if err != nil {
		return err
	}

	loader := schema.NewLoader()
	command, err := loader.LoadCommandFile(locateSchemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	mode := types.LengthRaw
	if locateSanitize {
		mode = types.LengthSanitized
	}

	locator, err := argspan.NewLocator(command, argspan.WithLengthMode(mode))
	if err != nil {
		return err
	}

	entries, err := locator.Locate(args, targets, locateLimit)
	if err != nil {
		return fmt.Errorf("locating: %w", err)
	}

	switch locateFormat {
	case "json":
		return outputLocateJSON(cmd, entries)
	case "human":
		return outputLocateHuman(cmd, args, entries, role, mode)
	default:
		return fmt.Errorf("unknown format: %s", locateFormat)
	}
}

func outputLocateJSON(cmd *cobra.Command, entries []locate.Entry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func outputLocateHuman(cmd *cobra.Command, tokens []string, entries []locate.Entry, role highlight.Role, mode types.LengthMode) error {
	out := cmd.OutOrStdout()

	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintln(out, "No occurrences found.")
		}
		return nil
	}

	styles := highlight.NewStyles(colorEnabled(locateColor))
	for _, entry := range entries {
		entryRole := role
		if _, ok := highlight.Part(entry.Location, entryRole); !ok {
			// The occurrence has no such part; fall back to the whole
			// span rather than erroring per entry.
			entryRole = highlight.RoleAll
		}
		label := fmt.Sprintf("%s (%s)", entry.Target, entry.Location.Kind)
		if err := styles.Render(out, tokens, entry.Location, entryRole, label, mode); err != nil {
			return err
		}
	}
	return nil
}

// colorEnabled resolves the --color flag: auto requires a TTY and an
// unset NO_COLOR env var.
func colorEnabled(flag string) bool {
	switch flag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func splitTargets(s string) []string {
	var targets []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

