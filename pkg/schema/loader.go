// Package schema declares parameter schemas: which spellings exist,
// what arity they carry, and how they nest under subcommands. Schemas
// feed the alias index; the locator itself never reads them directly.
package schema

import (
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/praetorian-inc/argspan/pkg/types"
	"gopkg.in/yaml.v3"
)

// Loader handles loading schemas from YAML declarations.
type Loader struct {
	fs fs.FS // optional filesystem for embedded schemas
}

// NewLoader creates a loader that reads from the OS filesystem.
func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithFS creates a loader that resolves paths inside fsys.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// LoadCommand loads a command schema from YAML bytes. The loaded schema
// is validated before it is returned.
func (l *Loader) LoadCommand(data []byte) (*types.Command, error) {
	var yc yamlCommand
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cmd, err := convertYAMLCommand(yc)
	if err != nil {
		return nil, err
	}
	if err := ValidateCommand(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// LoadCommandFile loads a command schema from a YAML file path.
func (l *Loader) LoadCommandFile(path string) (*types.Command, error) {
	var data []byte
	var err error
	if l.fs != nil {
		data, err = fs.ReadFile(l.fs, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.LoadCommand(data)
}

// convertYAMLCommand converts yamlCommand to types.Command recursively.
func convertYAMLCommand(yc yamlCommand) (*types.Command, error) {
	cmd := &types.Command{
		Name:    yc.Name,
		Aliases: yc.Aliases,
	}

	for _, yp := range yc.Params {
		p, err := convertYAMLParam(yp)
		if err != nil {
			return nil, err
		}
		cmd.Params = append(cmd.Params, p)
	}

	for _, sub := range yc.Commands {
		s, err := convertYAMLCommand(sub)
		if err != nil {
			return nil, err
		}
		cmd.Subcommands = append(cmd.Subcommands, s)
	}

	return cmd, nil
}

// convertYAMLParam converts yamlParam to types.Param, applying arity
// defaults: flags take no values, everything else takes exactly one
// unless declared otherwise.
func convertYAMLParam(yp yamlParam) (*types.Param, error) {
	p := &types.Param{
		ID:                yp.ID,
		Long:              yp.Long,
		MinValues:         yp.MinValues,
		AllowHyphenValues: yp.AllowHyphenValues,
		IsFlag:            yp.Flag,
	}

	for _, s := range yp.Short {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) || r == utf8.RuneError {
			return nil, fmt.Errorf("param %s: short alias %q must be a single character", yp.ID, s)
		}
		p.Short = append(p.Short, r)
	}

	switch {
	case yp.Flag:
		p.MaxValues = 0
	case yp.MaxValues != nil:
		p.MaxValues = *yp.MaxValues
	default:
		p.MaxValues = 1
	}

	return p, nil
}
