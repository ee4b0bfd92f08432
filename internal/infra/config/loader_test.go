package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[log]
level = "debug"

[budget]
capacity_floor = 30
capacity_step = 0
home_cost = 3

[backup]
format = "yaml"
dir = "/tmp/backups"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.Rules{CapacityFloor: 30, CapacityStep: 0}, cfg.Rules())
	assert.Equal(t, 3, cfg.Budget.HomeCost)
	assert.Equal(t, domain.LibraryDefaultCost, cfg.Budget.LibraryCost)
	assert.Equal(t, domain.BackupYAML, cfg.Backup.Format)
	assert.Equal(t, "/tmp/backups", cfg.Backup.Dir)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_MergeLocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[log]
level = "warn"

[budget]
capacity_floor = 50
library_cost = 12
`)
	writeConfig(t, dataDir, `
[budget]
capacity_floor = 45
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)            // From global
	assert.Equal(t, 45, cfg.Budget.CapacityFloor)     // Overridden by local
	assert.Equal(t, 12, cfg.Budget.LibraryCost)       // From global
	assert.Equal(t, 10, cfg.Budget.CapacityStep)      // Default
	assert.Equal(t, domain.BackupJSON, cfg.Backup.Format)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
stray = 1

[log]
level = "loud"
color = true

[budget]
capacity_step = -5
home_cost = "five"

[backup]
format = "xml"

[sync]
url = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for [backup].format: xml",
		"invalid value for [budget].capacity_step: expected a non-negative integer",
		"invalid value for [budget].home_cost: expected a non-negative integer",
		"invalid value for [log].level: loud",
		"unknown key in [log]: color",
		"unknown key: stray",
		"unknown section: sync",
	}, cfg.Warnings)

	// Invalid values keep the defaults.
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, 10, cfg.Budget.CapacityStep)
	assert.Equal(t, domain.HomeDefaultCost, cfg.Budget.HomeCost)
	assert.Equal(t, domain.BackupJSON, cfg.Backup.Format)
}

func TestLoader_Load_ExpandsHome(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[store]
path = "~/willflow/state.json"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "willflow", "state.json"), cfg.Store.Path)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[log
level = "debug"
`)

	_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_Load_NoGlobalDir(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[log]\nlevel = \"error\"\n")

	cfg, err := NewLoaderWithGlobalDir(dataDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}
