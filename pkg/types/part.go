package types

// BytePart is a half-open byte range [Offset, Offset+Length) in the
// flattened argv string.
type BytePart struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// End returns the exclusive end offset of the part.
func (p BytePart) End() int {
	return p.Offset + p.Length
}

// SliceOf returns the substring of the flattened argv string covered by
// the part. Out-of-range parts are clamped to the string bounds.
func (p BytePart) SliceOf(argv string) string {
	start := min(p.Offset, len(argv))
	end := min(p.End(), len(argv))
	if start > end {
		return ""
	}
	return argv[start:end]
}
