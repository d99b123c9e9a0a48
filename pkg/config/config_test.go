package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "skills", cfg.Root)
	assert.Equal(t, OutputText, cfg.Output)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "fmt", cfg.LogFormat)
}

func TestFromViperOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("root", "packages")
	viper.Set("strict", true)
	viper.Set("output", "json")
	viper.Set("max_line_length", 120)
	viper.Set("description_limit", 160)

	cfg, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "packages", cfg.Root)
	assert.True(t, cfg.Strict)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 120, cfg.MaxLineLength)
	assert.Equal(t, 160, cfg.DescriptionLimit)
}

func TestFromViperRejectsUnknownOutput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output", "yaml")

	_, err := FromViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}
