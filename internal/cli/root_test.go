package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/app"
)

func TestNewRootCommand_NoArgs_LaunchesBoard(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchBoardFunc
	defer func() {
		launchBoardFunc = originalFunc
	}()

	called := false
	launchBoardFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	// Create root command with nil container (not used in this test)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchBoardFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchBoardFunc
	defer func() {
		launchBoardFunc = originalFunc
	}()

	called := false
	launchBoardFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchBoardFunc should NOT be called when --help is provided")
	output := buf.String()
	assert.Contains(t, output, "Day Commands:")
	assert.Contains(t, output, "Library Commands:")
	assert.Contains(t, output, "Insights:")
	assert.Contains(t, output, "Data & Settings:")
	assert.Contains(t, output, "newday")
}

func TestBoardCommand_LaunchesBoard(t *testing.T) {
	originalFunc := launchBoardFunc
	defer func() {
		launchBoardFunc = originalFunc
	}()

	c, _ := newTestContainer(t, mondayState())
	var got *app.Container
	launchBoardFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	root := NewRootCommand(c, "test-version")
	root.SetArgs([]string{"tui"})
	require.NoError(t, root.Execute())

	assert.Same(t, c, got)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t, mondayState())
	c.AppConfig.Warnings = []string{`unknown key "budget.typo"`}

	root := NewRootCommand(c, "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"history"})

	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), `Warning: unknown key "budget.typo"`)
	assert.NotContains(t, out.String(), "Warning")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}
