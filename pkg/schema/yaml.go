package schema

// yamlParam is the intermediate struct for parsing a parameter
// declaration. Maps YAML fields to types.Param.
type yamlParam struct {
	ID                string   `yaml:"id"`
	Long              []string `yaml:"long,omitempty"`
	Short             []string `yaml:"short,omitempty"`
	MinValues         int      `yaml:"min_values,omitempty"`
	MaxValues         *int     `yaml:"max_values,omitempty"`
	AllowHyphenValues bool     `yaml:"allow_hyphen_values,omitempty"`
	Flag              bool     `yaml:"flag,omitempty"`
}

// yamlCommand represents one command declaration: its spellings, its
// parameters, and nested subcommands. The top level of a schema file is
// itself a command.
type yamlCommand struct {
	Name     string        `yaml:"name"`
	Aliases  []string      `yaml:"aliases,omitempty"`
	Params   []yamlParam   `yaml:"params,omitempty"`
	Commands []yamlCommand `yaml:"commands,omitempty"`
}
