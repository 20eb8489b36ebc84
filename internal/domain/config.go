package domain

import "time"

// OutputFormat selects how the CLI renders results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether the format is one the renderer knows.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheDir  string        `mapstructure:"cache_dir"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	NoCache   bool          `mapstructure:"no_cache"`
	Output    OutputFormat  `mapstructure:"output"`
	Debug     bool          `mapstructure:"debug"`
}
