package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/varoOP/go-animethemes/internal/domain"
	"github.com/varoOP/go-animethemes/pkg/animethemes"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultCacheTTL = 24 * time.Hour
)

// Load builds the CLI configuration from, in order of precedence, flags
// bound by the command layer, ANIMETHEMES_* environment variables and the
// config file viper has read.
func Load() (*domain.Config, error) {
	cfg := &domain.Config{
		BaseURL:   viper.GetString("base_url"),
		UserAgent: viper.GetString("user_agent"),
		Timeout:   viper.GetDuration("timeout"),
		CacheDir:  viper.GetString("cache_dir"),
		CacheTTL:  viper.GetDuration("cache_ttl"),
		NoCache:   viper.GetBool("no_cache"),
		Output:    domain.OutputFormat(viper.GetString("output")),
		Debug:     viper.GetBool("debug"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = animethemes.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Output == "" {
		cfg.Output = domain.OutputText
	}
	if !cfg.Output.Valid() {
		return nil, errors.Errorf("invalid output format %q (must be 'text', 'json' or 'yaml')", cfg.Output)
	}

	if cfg.CacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving user cache directory")
		}
		cfg.CacheDir = filepath.Join(dir, "animethemes")
	}

	return cfg, nil
}
