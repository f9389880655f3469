package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/minigrep/internal/connectors/filesystem"
	"github.com/custodia-labs/minigrep/internal/core/services"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

// testEnv holds the services a test runs against.
type testEnv struct {
	dir      string
	poemPath string
	settings *services.SettingsService
}

// setupTestServices wires real services over a temp file and an in-memory
// config store, and restores global command state afterwards.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	poemPath := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(poemPath, []byte(poem), 0o600))

	reader := filesystem.NewReader()
	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(Services{
		Search:   services.NewSearchService(reader),
		Settings: settings,
		Source:   reader,
	})

	origLookup := lookupEnv
	lookupEnv = func(string) (string, bool) { return "", false }

	t.Cleanup(func() {
		SetServices(Services{})
		lookupEnv = origLookup
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return &testEnv{dir: dir, poemPath: poemPath, settings: settings}
}

// setEnv makes lookupEnv report key as set to value.
func setEnv(key, value string) {
	lookupEnv = func(k string) (string, bool) {
		if k == key {
			return value, true
		}
		return "", false
	}
}

// resetFlags restores every flag in the command tree to its default so
// Changed state does not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the CLI with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags(rootCmd)
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)

	err = Execute(context.Background())
	return outBuf.String(), errBuf.String(), err
}
