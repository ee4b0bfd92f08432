package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
// The data directory and the global config home are temporary.
func newConfigTestContainer(t *testing.T) *app.Container {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	container, err := app.New(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container
}

// =============================================================================
// Config Command Tests
// =============================================================================

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert - should show help with subcommand list
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "template")
	assert.Contains(t, output, "init")
}

// =============================================================================
// Config Show Subcommand Tests
// =============================================================================

func TestConfigShowCommand_DisplaysEffectiveConfig(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, "config.toml (not found)")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "[budget]")
	assert.Contains(t, output, "capacity_floor = 40")
	assert.Contains(t, output, "home_cost = 5")
}

func TestConfigShowCommand_ReflectsLocalConfig(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName),
		[]byte("[budget]\ncapacity_step = 5\n"), 0o644))
	container, err := app.New(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	// Execute
	err = cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "capacity_step = 5")
	assert.NotContains(t, buf.String(), filepath.Join(dataDir, domain.ConfigFileName)+" (not found)")
}

// =============================================================================
// Config Template Subcommand Tests
// =============================================================================

func TestConfigTemplateCommand_OutputsTemplate(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"template"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "[budget]")
	assert.Contains(t, output, "capacity_floor = 40")
	assert.Contains(t, output, "[backup]")

	// Should not contain metadata headers (just template content)
	assert.NotContains(t, output, "[Loaded from]")
	assert.NotContains(t, output, "[Effective Config]")
}

// =============================================================================
// Config Init Subcommand Tests
// =============================================================================

func TestConfigInitCommand_CreatesLocalConfig(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created config file:")

	info := container.ConfigManager.GetLocalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "[budget]")
}

func TestConfigInitCommand_WithGlobalFlag(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init", "--global"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created config file:")

	info := container.ConfigManager.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "[budget]")
}

func TestConfigInitCommand_ErrorIfFileExists(t *testing.T) {
	// Setup
	container := newConfigTestContainer(t)
	require.NoError(t, container.ConfigManager.InitLocalConfig(domain.NewDefaultConfig()))

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"init"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
