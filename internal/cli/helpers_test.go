package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/testutil"
)

var monday = time.Date(2024, 3, 4, 8, 30, 0, 0, time.Local)

func mondayState() *domain.AppState {
	return domain.NewDefaultState(domain.FormatDate(monday))
}

// newTestContainer creates a container backed by in-memory test doubles.
func newTestContainer(t *testing.T, state *domain.AppState) (*app.Container, *testutil.MockStateRepository) {
	t.Helper()
	repo := testutil.NewMockStateRepository(state)
	c := app.NewWithDeps(
		app.Config{DataDir: t.TempDir()},
		repo,
		&testutil.SeqIDGenerator{},
		&testutil.MockClock{NowTime: monday},
		domain.NopLogger{},
	)
	return c, repo
}

// run executes cmd with args and returns stdout and stderr.
func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
