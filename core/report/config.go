package report

// Config holds configuration for the difference report.
type Config struct {
	// Delimiter separates columns and sources.
	Delimiter string `mapstructure:"delimiter" default:","`
	// ValueDelimiter separates the values of a repeated key within one column.
	ValueDelimiter string `mapstructure:"value_delimiter" default:";"`
	// Substitute replaces delimiter characters found inside data.
	Substitute string `mapstructure:"substitute" default:"_"`
}

func (c Config) withDefaults() Config {
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
	if c.ValueDelimiter == "" {
		c.ValueDelimiter = ";"
	}
	if c.Substitute == "" {
		c.Substitute = "_"
	}
	return c
}
