// Package argspan locates, within a raw sequence of command-line
// tokens, the exact byte span occupied by a named parameter's
// occurrence, split into its declaration marker, name text, delimiter,
// and value content.
//
// It exists to support diagnostics that must point at the precise
// substring of an original command line responsible for an error, such
// as underlining the offending flag or value.
//
// # Basic Usage
//
// Declare a schema and locate a parameter's first occurrence:
//
//	cmd, err := argspan.LoadSchemaFile("schema.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	locator, err := argspan.NewLocator(cmd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loc, err := locator.LocateFirst(os.Args[1:], "output")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if loc != nil {
//	    fmt.Printf("value at [%d,%d)\n", loc.Content.Offset, loc.Content.End())
//	}
//
// # Multiple Targets
//
// The general scan takes any number of targets with a per-target limit
// and returns entries in first-occurrence order:
//
//	entries, err := locator.Locate(os.Args[1:], []string{"output", "verbose"}, 2)
//
// Offsets refer to the flattened argv string: the tokens joined with
// single spaces, as the command line would appear in a shell. A target
// that never appears yields no entries; that is not an error.
package argspan

import (
	"fmt"

	"github.com/praetorian-inc/argspan/pkg/alias"
	"github.com/praetorian-inc/argspan/pkg/locate"
	"github.com/praetorian-inc/argspan/pkg/schema"
	"github.com/praetorian-inc/argspan/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/argspan" without
// subpackages.
type (
	// Alias is one recognized spelling of a parameter.
	Alias = types.Alias

	// BytePart is a half-open byte range in the flattened argv string.
	BytePart = types.BytePart

	// ArgLocation describes how one occurrence appears on the command
	// line.
	ArgLocation = types.ArgLocation

	// Param is the shared metadata of one parameter.
	Param = types.Param

	// Command is a parameter schema with optional subcommands.
	Command = types.Command

	// Entry pairs a requested target with one located occurrence.
	Entry = locate.Entry

	// LengthMode selects how token bytes are counted.
	LengthMode = types.LengthMode
)

// Re-export location shapes and length modes.
const (
	KindDiscrete = types.KindDiscrete
	KindStuck    = types.KindStuck
	KindComplete = types.KindComplete

	LengthRaw       = types.LengthRaw
	LengthSanitized = types.LengthSanitized
)

// ErrUnknownAlias reports a scanned alias the schema never declared:
// an internal consistency violation between the token grammar and the
// schema, never a user error.
var ErrUnknownAlias = alias.ErrUnknownAlias

// LongAlias returns the long alias with the given spelling.
func LongAlias(name string) Alias { return types.LongAlias(name) }

// ShortAlias returns the short alias with the given character.
func ShortAlias(c rune) Alias { return types.ShortAlias(c) }

// Locator resolves aliases against one schema and scans token
// sequences for parameter spans. A Locator is safe for concurrent use;
// its alias index builds lazily exactly once.
type Locator struct {
	index *alias.Index
	scan  *locate.Locator
}

// locatorConfig holds locator configuration.
type locatorConfig struct {
	mode     types.LengthMode
	resolver alias.Resolver
}

// Option configures a Locator.
type Option func(*locatorConfig)

// WithLengthMode sets how value and positional token bytes are
// counted. The default counts raw bytes.
func WithLengthMode(mode LengthMode) Option {
	return func(c *locatorConfig) {
		c.mode = mode
	}
}

// WithResolver substitutes a custom alias resolver for the schema's
// own index, for cached or subcommand-scoped resolution strategies.
func WithResolver(r alias.Resolver) Option {
	return func(c *locatorConfig) {
		c.resolver = r
	}
}

// NewLocator creates a Locator over the command's schema.
//
// The schema is validated up front; the alias index itself is built
// lazily on first use and shared by every scan.
func NewLocator(cmd *Command, opts ...Option) (*Locator, error) {
	config := &locatorConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Locator{}
	resolver := config.resolver
	if resolver == nil {
		if err := schema.ValidateCommand(cmd); err != nil {
			return nil, fmt.Errorf("invalid schema: %w", err)
		}
		l.index = alias.New(cmd)
		resolver = l.index
	}

	scan, err := locate.New(locate.Config{
		Resolver: resolver,
		Mode:     config.mode,
	})
	if err != nil {
		return nil, err
	}
	l.scan = scan
	return l, nil
}

// Locate returns every occurrence of the requested target parameter
// IDs, in first-occurrence order across all targets combined, at most
// limitPerTarget entries per target.
func (l *Locator) Locate(tokens []string, targets []string, limitPerTarget int) ([]Entry, error) {
	return l.scan.Locate(tokens, targets, limitPerTarget)
}

// LocateFirst returns the first occurrence of a single target, or nil
// if the target never appears in the tokens.
func (l *Locator) LocateFirst(tokens []string, target string) (*ArgLocation, error) {
	return l.scan.LocateFirst(tokens, target)
}

// Resolve answers the alias-resolution query independently of any
// scan, for callers building custom walks.
func (l *Locator) Resolve(a Alias) (*Param, error) {
	if l.index == nil {
		return nil, fmt.Errorf("locator uses a custom resolver; query it directly")
	}
	return l.index.Resolve(a)
}

// Index exposes the underlying alias index, or nil when the Locator
// was built with a custom resolver.
func (l *Locator) Index() *alias.Index {
	return l.index
}

// LoadSchemaFile loads a command schema from a YAML file.
// Use this with NewLocator to scan against a declarative schema.
//
// Example:
//
//	cmd, err := argspan.LoadSchemaFile("/path/to/schema.yaml")
//	if err != nil {
//	    return err
//	}
//	locator, err := argspan.NewLocator(cmd)
func LoadSchemaFile(path string) (*Command, error) {
	loader := schema.NewLoader()
	return loader.LoadCommandFile(path)
}
