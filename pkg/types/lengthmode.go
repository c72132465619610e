package types

import "strings"

// LengthMode selects how token bytes are counted when computing spans.
// Alias spellings are always valid UTF-8, so the mode only affects value
// content and positional tokens.
type LengthMode string

const (
	// LengthRaw counts the token bytes exactly as given. This is the
	// zero value.
	LengthRaw LengthMode = ""
	// LengthSanitized counts bytes after replacing invalid UTF-8
	// sequences with U+FFFD, matching what a lossy display layer would
	// render.
	LengthSanitized LengthMode = "sanitized"
)

// Transform returns the token as it appears in the flattened argv
// string under the mode.
func (m LengthMode) Transform(token string) string {
	if m == LengthSanitized {
		return strings.ToValidUTF8(token, "�")
	}
	return token
}

// Len returns the byte length of the token under the mode.
func (m LengthMode) Len(token string) int {
	return len(m.Transform(token))
}
