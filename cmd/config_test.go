package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, config{}, loadConfig())
}

func TestLoadConfigValues(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(ConfigFile, []byte(
		"dialect = \"base\"\noutput = \"analysis.R\"\npass_through = true\n"), 0644))

	cfg := loadConfig()
	assert.Equal(t, "base", cfg.Dialect)
	assert.Equal(t, "analysis.R", cfg.Output)
	assert.True(t, cfg.PassThrough)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(ConfigFile, []byte("not [valid toml"), 0644))
	assert.Equal(t, config{}, loadConfig())
}
