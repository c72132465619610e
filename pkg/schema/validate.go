package schema

import (
	"fmt"

	"github.com/praetorian-inc/argspan/pkg/types"
)

// ValidateParam checks parameter consistency and required fields.
// Returns error if the parameter is invalid.
func ValidateParam(p *types.Param) error {
	if p == nil {
		return fmt.Errorf("param is nil")
	}
	if p.ID == "" {
		return fmt.Errorf("param ID is required")
	}
	if len(p.Long) == 0 && len(p.Short) == 0 {
		return fmt.Errorf("param %s declares no aliases", p.ID)
	}
	for _, name := range p.Long {
		if name == "" {
			return fmt.Errorf("param %s declares an empty long alias", p.ID)
		}
	}

	if p.IsFlag {
		if p.MinValues != 0 || p.MaxValues != 0 {
			return fmt.Errorf("param %s is a flag and must not declare arity", p.ID)
		}
		return nil
	}

	if p.MinValues < 0 {
		return fmt.Errorf("param %s has negative min_values", p.ID)
	}
	if p.MaxValues >= 0 && p.MinValues > p.MaxValues {
		return fmt.Errorf("param %s has min_values %d greater than max_values %d",
			p.ID, p.MinValues, p.MaxValues)
	}
	return nil
}

// ValidateCommand checks a command schema recursively: every parameter
// must be valid, no alias may be declared twice within one command (the
// long and short spaces are independent), and subcommand spellings must
// be unique among siblings.
func ValidateCommand(cmd *types.Command) error {
	if cmd == nil {
		return fmt.Errorf("command is nil")
	}

	seen := make(map[types.Alias]string)
	for _, p := range cmd.Params {
		if err := ValidateParam(p); err != nil {
			return err
		}
		for _, a := range p.Aliases() {
			if other, ok := seen[a]; ok {
				return fmt.Errorf("alias %s declared by both %s and %s", a, other, p.ID)
			}
			seen[a] = p.ID
		}
	}

	subSeen := make(map[string]string)
	for _, sub := range cmd.Subcommands {
		if sub.Name == "" {
			return fmt.Errorf("subcommand of %s has no name", cmd.Name)
		}
		for _, name := range sub.CommandAliases() {
			if other, ok := subSeen[name]; ok {
				return fmt.Errorf("command alias %q declared by both %s and %s", name, other, sub.Name)
			}
			subSeen[name] = sub.Name
		}
		if err := ValidateCommand(sub); err != nil {
			return err
		}
	}

	return nil
}
