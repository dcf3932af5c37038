package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owings1/pytableaux/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	config.ResetConfig()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "CPL", cfg.DefaultLogic)
	assert.Equal(t, 10_000, cfg.MaxSteps)
	assert.True(t, cfg.RankOptimizations)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pytableaux.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_logic: FDE\nmax_steps: 500\n"), 0o644))

	config.ResetConfig()
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "FDE", cfg.DefaultLogic)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.Equal(t, path, config.GetConfigFileUsed())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PYTABLEAUX_DEFAULT_LOGIC", "K3")
	config.ResetConfig()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "K3", cfg.DefaultLogic)
}
