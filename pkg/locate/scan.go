package locate

import (
	"unicode/utf8"

	"github.com/praetorian-inc/argspan/pkg/alias"
	"github.com/praetorian-inc/argspan/pkg/types"
)

const (
	separatorLength       = 1
	equalSignLength       = 1
	shortDeclarationLen   = 1
	longDeclarationLength = 2
)

// scan is the state of one Locate call: a running byte cursor over the
// flattened argv string plus per-target bookkeeping.
type scan struct {
	resolver alias.Resolver
	mode     types.LengthMode

	tokens  []string
	targets []string
	limit   int

	i   int // index of the current token
	pos int // byte offset of the current token in the flattened argv string

	targetSet map[string]bool
	counts    map[string]int
	entries   []Entry
}

func (s *scan) run() ([]Entry, error) {
	for s.i = 0; s.i < len(s.tokens); s.i++ {
		tok := s.tokens[s.i]
		var err error
		switch {
		case isLongToken(tok):
			err = s.scanLong(tok)
		case isShortCluster(tok):
			err = s.scanCluster(tok)
		default:
			// Positional or value-shaped token: never an alias.
			s.pos += s.mode.Len(tok) + separatorLength
		}
		if err != nil {
			return nil, err
		}
		if s.satisfied() {
			break
		}
	}
	return s.entries, nil
}

// scanLong handles `--name` and `--name=value` tokens.
func (s *scan) scanLong(tok string) error {
	name, inline, hasInline := cutEqual(tok[longDeclarationLength:])
	p, err := s.resolver.Resolve(types.LongAlias(name))
	if err != nil {
		return err
	}

	declaration := types.BytePart{Offset: s.pos, Length: longDeclarationLength}
	namePart := types.BytePart{Offset: declaration.End(), Length: len(name)}

	if !s.wanted(p.ID) {
		s.pos = namePart.End()
		if hasInline {
			s.pos += equalSignLength + s.mode.Len(inline)
		}
		s.pos += separatorLength
		return nil
	}

	if hasInline {
		loc := types.NewComplete(declaration, namePart, s.mode.Len(inline))
		s.emit(p.ID, loc)
		s.pos = loc.Content.End() + separatorLength
		return nil
	}

	loc := s.consumeAdjacent(p, declaration, namePart)
	s.emit(p.ID, loc)
	s.advancePast(loc, namePart)
	return nil
}

// scanCluster handles `-abc`-shaped tokens: a one-byte declaration
// followed by clustered short characters. The first value-taking
// parameter encountered terminates the character walk; once it consumes
// the remainder of the cluster, no later character is reinterpreted as
// a separate flag.
func (s *scan) scanCluster(tok string) error {
	declaration := types.BytePart{Offset: s.pos, Length: shortDeclarationLen}
	rest := tok[shortDeclarationLen:]
	nameOffset := declaration.End()

	for j := 0; j < len(rest); {
		r, size := utf8.DecodeRuneInString(rest[j:])
		if r == utf8.RuneError && size == 1 {
			// Undecodable bytes are never an alias and never an
			// error; they only occupy their span. Maximal invalid
			// runs are measured whole so sanitized lengths agree
			// with a whole-token transform.
			run := invalidRunLength(rest[j:])
			nameOffset += s.mode.Len(rest[j : j+run])
			j += run
			continue
		}

		p, err := s.resolver.Resolve(types.ShortAlias(r))
		if err != nil {
			return err
		}
		namePart := types.BytePart{Offset: nameOffset, Length: size}

		if p.IsFlag {
			if s.wanted(p.ID) {
				s.emit(p.ID, types.NewDiscrete(declaration, namePart))
			}
			nameOffset += size
			j += size
			continue
		}

		remainder := rest[j+size:]
		switch {
		case remainder == "":
			if !s.wanted(p.ID) {
				s.pos = namePart.End() + separatorLength
				return nil
			}
			loc := s.consumeAdjacent(p, declaration, namePart)
			s.emit(p.ID, loc)
			s.advancePast(loc, namePart)
		case remainder[0] == '=':
			if s.wanted(p.ID) {
				s.emit(p.ID, types.NewComplete(declaration, namePart, s.mode.Len(remainder[1:])))
			}
			s.pos = namePart.End() + equalSignLength + s.mode.Len(remainder[1:]) + separatorLength
		default:
			if s.wanted(p.ID) {
				s.emit(p.ID, types.NewStuck(declaration, namePart, s.mode.Len(remainder)))
			}
			s.pos = namePart.End() + s.mode.Len(remainder) + separatorLength
		}
		return nil
	}

	// The cluster held only flags (or skipped bytes).
	s.pos = nameOffset + separatorLength
	return nil
}

// consumeAdjacent applies the following-token consumption rule shared
// by long options and cluster-terminal shorts. A bounded arity consumes
// up to MaxValues following tokens; an unbounded arity consumes
// greedily. Both stop at option-shaped input unless the parameter
// explicitly allows hyphen values. Consumed tokens joined with one-byte
// separators form the content span; zero consumed tokens yields
// Discrete.
func (s *scan) consumeAdjacent(p *types.Param, declaration, name types.BytePart) types.ArgLocation {
	contentLength := 0
	consumed := 0
	for p.TakesValue() && (p.Unbounded() || consumed < p.MaxValues) && s.i+1 < len(s.tokens) {
		peek := s.tokens[s.i+1]
		if isOptionShaped(peek) && !p.AllowHyphenValues {
			break
		}
		if consumed > 0 {
			contentLength += separatorLength
		}
		contentLength += s.mode.Len(peek)
		consumed++
		s.i++
	}

	if consumed == 0 {
		return types.NewDiscrete(declaration, name)
	}
	return types.NewComplete(declaration, name, contentLength)
}

// advancePast moves the cursor beyond a location produced by adjacent
// consumption, where the name span ends the current token.
func (s *scan) advancePast(loc types.ArgLocation, name types.BytePart) {
	if loc.Kind == types.KindDiscrete {
		s.pos = name.End() + separatorLength
		return
	}
	s.pos = loc.Content.End() + separatorLength
}

// wanted reports whether the parameter is a target that still has
// occurrences left under its limit.
func (s *scan) wanted(id string) bool {
	return s.targetSet[id] && s.counts[id] < s.limit
}

func (s *scan) emit(id string, loc types.ArgLocation) {
	s.entries = append(s.entries, Entry{Target: id, Location: loc})
	s.counts[id]++
}

func (s *scan) satisfied() bool {
	for _, id := range s.targets {
		if s.counts[id] < s.limit {
			return false
		}
	}
	return true
}
