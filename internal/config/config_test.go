package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varoOP/go-animethemes/internal/domain"
	"github.com/varoOP/go-animethemes/pkg/animethemes"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, animethemes.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, domain.OutputText, cfg.Output)
	assert.NotEmpty(t, cfg.CacheDir)
	assert.False(t, cfg.NoCache)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("base_url", "https://animethemes.dev/api")
	viper.Set("output", "json")
	viper.Set("cache_ttl", "1h")
	viper.Set("no_cache", true)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://animethemes.dev/api", cfg.BaseURL)
	assert.Equal(t, domain.OutputJSON, cfg.Output)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.True(t, cfg.NoCache)
}

func TestLoadInvalidOutput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
