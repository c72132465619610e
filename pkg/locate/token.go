package locate

import (
	"strings"
	"unicode/utf8"
)

// isLongToken reports a `--name` or `--name=value` shape. A bare `--`
// is not an option.
func isLongToken(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "--")
}

// isShortCluster reports a `-abc` shape: a single hyphen followed by at
// least one non-hyphen byte. A bare `-` is a value.
func isShortCluster(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok[1] != '-'
}

// isOptionShaped reports whether a token would be read as an option
// rather than a value when deciding adjacent-token consumption.
func isOptionShaped(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// cutEqual splits a long option body at the first `=`.
func cutEqual(body string) (name, value string, found bool) {
	return strings.Cut(body, "=")
}

// invalidRunLength returns the length in bytes of the maximal run of
// invalid UTF-8 at the start of s.
func invalidRunLength(s string) int {
	run := 0
	for run < len(s) {
		r, size := utf8.DecodeRuneInString(s[run:])
		if r != utf8.RuneError || size != 1 {
			break
		}
		run++
	}
	return run
}
