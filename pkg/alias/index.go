// Package alias resolves parameter spellings to their shared metadata.
package alias

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/praetorian-inc/argspan/pkg/types"
)

// ErrUnknownAlias reports an alias that the schema never declared.
//
// Hitting it during a scan means the token grammar and the schema
// disagree, which should be statically impossible when both come from
// the same declarations. It is an internal consistency violation, not a
// user error, and callers must not treat it as a recoverable condition.
var ErrUnknownAlias = errors.New("unknown alias")

// ErrUnknownCommand reports a subcommand spelling that the schema never
// declared.
var ErrUnknownCommand = errors.New("unknown command")

// Resolver maps an alias to the parameter it spells. Implementations
// may resolve directly, through a cache, or against a subcommand scope;
// the scan algorithm does not care which.
type Resolver interface {
	// Resolve returns the shared parameter metadata for the alias, or
	// an error wrapping ErrUnknownAlias.
	Resolve(a types.Alias) (*types.Param, error)
}

// Index is an immutable-after-construction mapping from every declared
// alias of a schema to its shared parameter. The mapping is built
// lazily exactly once per Index; a shared Index is safe for concurrent
// use and all reads after the first build are lock-free.
type Index struct {
	cmd *types.Command

	once   sync.Once
	params map[types.Alias]*types.Param
	subs   map[string]*types.Command
}

// New returns an unbuilt index over the command's schema. Construction
// is deferred to the first lookup.
func New(cmd *types.Command) *Index {
	return &Index{cmd: cmd}
}

// build registers each parameter under every declared spelling,
// canonical names included, all pointing at the one shared instance.
func (ix *Index) build() {
	ix.once.Do(func() {
		ix.params = make(map[types.Alias]*types.Param)
		for _, p := range ix.cmd.Params {
			for _, a := range p.Aliases() {
				ix.params[a] = p
			}
		}
		ix.subs = make(map[string]*types.Command)
		for _, sub := range ix.cmd.Subcommands {
			for _, name := range sub.CommandAliases() {
				ix.subs[name] = sub
			}
		}
	})
}

// Resolve implements Resolver.
func (ix *Index) Resolve(a types.Alias) (*types.Param, error) {
	ix.build()
	p, ok := ix.params[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlias, a)
	}
	return p, nil
}

// Subcommand returns a derived index over the named subcommand's own
// schema. The derived index builds independently and lazily, like any
// other.
func (ix *Index) Subcommand(name string) (*Index, error) {
	ix.build()
	sub, ok := ix.subs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return New(sub), nil
}

// Aliases returns every registered alias in Compare order, longs before
// shorts. The set is exactly the schema's declared aliases.
func (ix *Index) Aliases() []types.Alias {
	ix.build()
	aliases := make([]types.Alias, 0, len(ix.params))
	for a := range ix.params {
		aliases = append(aliases, a)
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Compare(aliases[j]) < 0
	})
	return aliases
}
