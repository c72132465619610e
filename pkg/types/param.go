package types

// Param is the shared, immutable metadata of one parameter. Multiple
// aliases resolve to the same *Param; the instance lives as long as the
// Command that declares it.
type Param struct {
	ID                string   // canonical identifier, e.g. "output-format"
	Long              []string // long spellings, canonical name first
	Short             []rune   // short spellings, canonical short first
	MinValues         int      // minimum number of values
	MaxValues         int      // maximum number of values; < 0 means unbounded
	AllowHyphenValues bool     // accept option-shaped tokens as values
	IsFlag            bool     // boolean switch, takes no value
}

// TakesValue reports whether the parameter expects value content.
func (p *Param) TakesValue() bool {
	return !p.IsFlag
}

// Unbounded reports whether the parameter consumes values greedily.
func (p *Param) Unbounded() bool {
	return p.MaxValues < 0
}

// Aliases returns every declared spelling, longs before shorts.
func (p *Param) Aliases() []Alias {
	aliases := make([]Alias, 0, len(p.Long)+len(p.Short))
	for _, name := range p.Long {
		aliases = append(aliases, LongAlias(name))
	}
	for _, c := range p.Short {
		aliases = append(aliases, ShortAlias(c))
	}
	return aliases
}

// Command is a parameter schema: the declared parameters plus nested
// subcommand schemas.
type Command struct {
	Name        string
	Aliases     []string // extra spellings of the command name
	Params      []*Param
	Subcommands []*Command
}

// CommandAliases returns every spelling the command answers to,
// canonical name first.
func (c *Command) CommandAliases() []string {
	return append([]string{c.Name}, c.Aliases...)
}
