package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/argspan/pkg/types"
)

// Styles holds color formatters for rendered highlights.
type Styles struct {
	Source    *color.Color
	Underline *color.Color
	Label     *color.Color
}

// NewStyles creates color formatters for highlight output.
// enabled=false respects --color=never and the NO_COLOR env var.
func NewStyles(enabled bool) *Styles {
	s := &Styles{
		Source:    color.New(color.FgHiWhite),
		Underline: color.New(color.Bold, color.FgHiRed),
		Label:     color.New(color.FgHiBlue),
	}

	if !enabled {
		s.Source.DisableColor()
		s.Underline.DisableColor()
		s.Label.DisableColor()
	}

	return s
}

// Render writes the flattened argv string followed by an underline
// beneath the part the role names, with an optional trailing label.
// A zero-length part still gets a single caret marking its position.
func (s *Styles) Render(w io.Writer, tokens []string, loc types.ArgLocation, role Role, label string, mode types.LengthMode) error {
	part, ok := Part(loc, role)
	if !ok {
		return fmt.Errorf("location has no %s part", role)
	}

	argv := Flatten(tokens, mode)
	if _, err := s.Source.Fprintln(w, argv); err != nil {
		return err
	}

	marks := "^"
	if part.Length > 1 {
		marks += strings.Repeat("~", part.Length-1)
	}
	if _, err := fmt.Fprint(w, strings.Repeat(" ", part.Offset)); err != nil {
		return err
	}
	if _, err := s.Underline.Fprint(w, marks); err != nil {
		return err
	}
	if label != "" {
		if _, err := fmt.Fprint(w, " "); err != nil {
			return err
		}
		if _, err := s.Label.Fprint(w, label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
