package types

import (
	"strings"
	"unicode/utf8"
)

// AliasKind distinguishes long aliases from short aliases. The two
// spaces are disjoint: a one-character long alias is not the same alias
// as a short with the same character.
type AliasKind string

const (
	// AliasLong is led by a double hyphen in the argv string,
	// e.g. `--long`, `--l`.
	AliasLong AliasKind = "long"
	// AliasShort is led by a single hyphen in the argv string and may
	// cluster with other shorts, e.g. `-s`, `-abcds`.
	AliasShort AliasKind = "short"
)

// Alias is one recognized spelling of a parameter. Hyphens are not part
// of the spelling. Alias is comparable and usable as a map key.
type Alias struct {
	Kind AliasKind
	Name string // long spelling, set when Kind == AliasLong
	Char rune   // short spelling, set when Kind == AliasShort
}

// LongAlias returns the long alias with the given spelling.
func LongAlias(name string) Alias {
	return Alias{Kind: AliasLong, Name: name}
}

// ShortAlias returns the short alias with the given character.
func ShortAlias(c rune) Alias {
	return Alias{Kind: AliasShort, Char: c}
}

// Len returns the byte length of the spelling as it appears in the argv
// string, hyphens excluded.
func (a Alias) Len() int {
	if a.Kind == AliasShort {
		return utf8.RuneLen(a.Char)
	}
	return len(a.Name)
}

// String renders the alias the way it is typed, hyphens included.
func (a Alias) String() string {
	if a.Kind == AliasShort {
		return "-" + string(a.Char)
	}
	return "--" + a.Name
}

// Compare totally orders aliases: all longs sort before all shorts,
// longs by spelling, shorts by character.
func (a Alias) Compare(b Alias) int {
	if a.Kind != b.Kind {
		if a.Kind == AliasLong {
			return -1
		}
		return 1
	}
	if a.Kind == AliasLong {
		return strings.Compare(a.Name, b.Name)
	}
	switch {
	case a.Char < b.Char:
		return -1
	case a.Char > b.Char:
		return 1
	}
	return 0
}
