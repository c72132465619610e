package schema

import (
	"strings"
	"unicode/utf8"

	"github.com/praetorian-inc/argspan/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FromFlagSet builds a command schema from a live pflag definition, so
// programs that already declare their flags through pflag or cobra can
// locate spans without a second declaration.
//
// Bool-typed flags become flag parameters. Slice- and array-typed flags
// get unbounded arity; everything else takes exactly one value. pflag
// has no hyphen-value or multi-arity declarations, so those stay at
// their defaults.
func FromFlagSet(name string, fs *pflag.FlagSet) *types.Command {
	cmd := &types.Command{Name: name}
	fs.VisitAll(func(f *pflag.Flag) {
		cmd.Params = append(cmd.Params, paramFromFlag(f))
	})
	return cmd
}

// FromCommand builds a command schema from a cobra command tree,
// subcommands included. Each command contributes its own flags plus the
// flags it inherits from its parents.
func FromCommand(c *cobra.Command) *types.Command {
	cmd := &types.Command{
		Name:    c.Name(),
		Aliases: c.Aliases,
	}
	addFlag := func(f *pflag.Flag) {
		cmd.Params = append(cmd.Params, paramFromFlag(f))
	}
	c.LocalFlags().VisitAll(addFlag)
	c.InheritedFlags().VisitAll(addFlag)

	for _, sub := range c.Commands() {
		cmd.Subcommands = append(cmd.Subcommands, FromCommand(sub))
	}
	return cmd
}

// paramFromFlag converts one pflag flag to shared parameter metadata.
func paramFromFlag(f *pflag.Flag) *types.Param {
	p := &types.Param{
		ID:   f.Name,
		Long: []string{f.Name},
	}
	if f.Shorthand != "" {
		r, _ := utf8.DecodeRuneInString(f.Shorthand)
		p.Short = []rune{r}
	}

	switch valueType := f.Value.Type(); {
	case valueType == "bool":
		p.IsFlag = true
	case strings.HasSuffix(valueType, "Slice"), strings.HasSuffix(valueType, "Array"):
		p.MinValues = 1
		p.MaxValues = -1
	default:
		p.MinValues = 1
		p.MaxValues = 1
	}
	return p
}
