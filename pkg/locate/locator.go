// Package locate finds the byte spans that a parameter's occurrences
// occupy in a raw command line.
//
// Offsets are expressed in the flattened argv string: the tokens joined
// with single-byte separators, the way the command line would appear in
// a shell. The scan is a single deterministic left-to-right pass and
// terminates in time linear in the total input length.
package locate

import (
	"fmt"

	"github.com/praetorian-inc/argspan/pkg/alias"
	"github.com/praetorian-inc/argspan/pkg/types"
)

// Entry pairs a requested target with one located occurrence.
type Entry struct {
	Target   string            `json:"target"`
	Location types.ArgLocation `json:"location"`
}

// Config for locator initialization.
type Config struct {
	// Resolver maps alias spellings to parameter metadata.
	Resolver alias.Resolver

	// Mode selects how value and positional token bytes are counted.
	// The zero value counts raw bytes.
	Mode types.LengthMode
}

// Locator scans token sequences for the spans of requested parameters.
// A Locator is stateless across calls and safe for concurrent use.
type Locator struct {
	resolver alias.Resolver
	mode     types.LengthMode
}

// New creates a Locator with the given config.
func New(cfg Config) (*Locator, error) {
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("locator requires a resolver")
	}
	return &Locator{resolver: cfg.Resolver, mode: cfg.Mode}, nil
}

// Locate walks the tokens once and returns every occurrence of the
// requested target parameter IDs, in first-occurrence order across all
// targets combined. At most limitPerTarget entries are returned per
// target; the walk stops early once every target has reached its limit.
//
// A target that never appears simply yields no entries. An alias in the
// token stream that the schema never declared is an internal
// consistency violation: Locate returns an error wrapping
// alias.ErrUnknownAlias and the results so far are discarded.
func (l *Locator) Locate(tokens []string, targets []string, limitPerTarget int) ([]Entry, error) {
	if len(targets) == 0 || limitPerTarget <= 0 {
		return nil, nil
	}
	s := &scan{
		resolver:  l.resolver,
		mode:      l.mode,
		tokens:    tokens,
		targets:   targets,
		limit:     limitPerTarget,
		targetSet: make(map[string]bool, len(targets)),
		counts:    make(map[string]int, len(targets)),
	}
	for _, id := range targets {
		s.targetSet[id] = true
	}
	return s.run()
}

// LocateFirst returns the first occurrence of a single target, or nil
// if the target never appears.
func (l *Locator) LocateFirst(tokens []string, target string) (*types.ArgLocation, error) {
	entries, err := l.Locate(tokens, []string{target}, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	loc := entries[0].Location
	return &loc, nil
}
