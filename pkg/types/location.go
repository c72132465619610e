package types

// LocationKind names the shape of an occurrence.
type LocationKind string

const (
	// KindDiscrete is an occurrence with no value span, e.g. `--verbose`.
	KindDiscrete LocationKind = "discrete"
	// KindStuck is a short-option value concatenated directly after its
	// flag character with no delimiter, e.g. `-sValue`.
	KindStuck LocationKind = "stuck"
	// KindComplete is a value separated from its name by an explicit
	// one-byte delimiter, `=` or the joining space, e.g. `--out=x`
	// or `--out x`.
	KindComplete LocationKind = "complete"
)

// ArgLocation describes how one occurrence of a parameter appears in the
// flattened argv string.
//
// Every occurrence has Declaration (the leading `-` or `--`, told apart
// by length) and Name (the literal spelling used, not the canonical ID).
// Delimiter is set only for KindComplete; Content is set for KindStuck
// and KindComplete.
//
//	              --abcdefg=...............
//	              ^ ^      ^^
//	Declaration.Offset     |Content.Offset
//	   (Length=2) |        |
//	              |        Delimiter.Offset
//	    Name.Offset           (Length=1)
//	     (Length=7)
//
// A Complete occurrence with Content.Length == 0 is an explicitly
// present empty value; absence of a value is KindDiscrete. Span lengths
// alone cannot tell the two apart, the Kind can.
type ArgLocation struct {
	Kind        LocationKind `json:"kind"`
	Declaration BytePart     `json:"declaration"`
	Name        BytePart     `json:"name"`
	Delimiter   BytePart     `json:"delimiter,omitzero"`
	Content     BytePart     `json:"content,omitzero"`
}

const delimiterLength = 1

// NewDiscrete returns a location for an occurrence without a value.
func NewDiscrete(declaration, name BytePart) ArgLocation {
	return ArgLocation{
		Kind:        KindDiscrete,
		Declaration: declaration,
		Name:        name,
	}
}

// NewStuck returns a location whose value of contentLength bytes starts
// directly after the name, with no delimiter.
func NewStuck(declaration, name BytePart, contentLength int) ArgLocation {
	return ArgLocation{
		Kind:        KindStuck,
		Declaration: declaration,
		Name:        name,
		Content: BytePart{
			Offset: name.End(),
			Length: contentLength,
		},
	}
}

// NewComplete returns a location whose value of contentLength bytes is
// separated from the name by a one-byte delimiter (`=` or the joining
// space).
func NewComplete(declaration, name BytePart, contentLength int) ArgLocation {
	delimiter := BytePart{
		Offset: name.End(),
		Length: delimiterLength,
	}
	return ArgLocation{
		Kind:        KindComplete,
		Declaration: declaration,
		Name:        name,
		Delimiter:   delimiter,
		Content: BytePart{
			Offset: delimiter.End(),
			Length: contentLength,
		},
	}
}
