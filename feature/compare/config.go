package compare

// Config holds configuration for folder comparison.
type Config struct {
	// Filter is a glob that file names must match to be compared.
	Filter string `mapstructure:"filter" default:"*"`
	// IgnoreSubstrings excludes file names containing any of these substrings.
	IgnoreSubstrings []string `mapstructure:"ignore_substrings" default:""`
	// Output is the path of the report file.
	Output string `mapstructure:"output" default:"result.csv"`
	// Workers bounds the number of file names compared concurrently.
	Workers int `mapstructure:"workers" default:"4"`
}

// MinFolders is the minimum number of configuration folders to compare.
const MinFolders = 2

func (c Config) withDefaults() Config {
	if c.Filter == "" {
		c.Filter = "*"
	}
	if c.Output == "" {
		c.Output = "result.csv"
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}
