// Package highlight renders located spans back onto the command line
// they came from, for diagnostics that underline an offending flag or
// value.
package highlight

import (
	"fmt"
	"strings"

	"github.com/praetorian-inc/argspan/pkg/types"
)

// Role names one part of a located occurrence.
type Role string

const (
	RoleDeclaration Role = "declaration"
	RoleName        Role = "name"
	RoleDelimiter   Role = "delimiter"
	RoleContent     Role = "content"
	// RoleAll covers the occurrence from declaration through its last
	// part.
	RoleAll Role = "all"
)

// Flatten joins tokens into the flattened argv string: the coordinate
// space every BytePart refers to. Tokens are separated by single
// spaces and transformed per the length mode.
func Flatten(tokens []string, mode types.LengthMode) string {
	transformed := make([]string, len(tokens))
	for i, tok := range tokens {
		transformed[i] = mode.Transform(tok)
	}
	return strings.Join(transformed, " ")
}

// Part extracts the span a role names from a location. Roles a shape
// does not carry (a delimiter on a stuck value, content on a discrete
// flag) report ok=false.
func Part(loc types.ArgLocation, role Role) (part types.BytePart, ok bool) {
	switch role {
	case RoleDeclaration:
		return loc.Declaration, true
	case RoleName:
		return loc.Name, true
	case RoleDelimiter:
		if loc.Kind != types.KindComplete {
			return types.BytePart{}, false
		}
		return loc.Delimiter, true
	case RoleContent:
		if loc.Kind == types.KindDiscrete {
			return types.BytePart{}, false
		}
		return loc.Content, true
	case RoleAll:
		end := loc.Name.End()
		if loc.Kind != types.KindDiscrete {
			end = loc.Content.End()
		}
		return types.BytePart{
			Offset: loc.Declaration.Offset,
			Length: end - loc.Declaration.Offset,
		}, true
	}
	return types.BytePart{}, false
}

// Roles returns the roles a location actually carries, in span order.
func Roles(loc types.ArgLocation) []Role {
	switch loc.Kind {
	case types.KindStuck:
		return []Role{RoleDeclaration, RoleName, RoleContent}
	case types.KindComplete:
		return []Role{RoleDeclaration, RoleName, RoleDelimiter, RoleContent}
	}
	return []Role{RoleDeclaration, RoleName}
}

// ParseRole converts a user-supplied role name.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDeclaration, RoleName, RoleDelimiter, RoleContent, RoleAll:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q (want declaration, name, delimiter, content, or all)", s)
}
