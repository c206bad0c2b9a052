package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakeshift.dev/pkg/snakeshift/internal/controller"
	"snakeshift.dev/pkg/snakeshift/internal/domain"
)

// newTestRootCmd builds a fresh root command wired to a buffer and points the
// shared UI and migrator at it for the duration of the test. Log output goes
// to a temp file so test runs leave no droppings in the package directory.
func newTestRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "test.log"))

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.SetOut(out)
	cmd.SetErr(out)

	originalUI := ui
	originalMigrator := migrator

	ui = controller.NewSimpleUI(cmd, false)
	migrator = domain.NewMigrator(sourceFS, reportStore, ui)

	t.Cleanup(func() {
		ui = originalUI
		migrator = originalMigrator
	})

	return cmd, out
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestMigrateCmd_RenamesAndRewrites(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"FooBar.cxx":  "#include \"FooBar.h\"\n\nnamespace FooBar {\n}\n",
		"FooBar.h":    "namespace FooBar {\n}\n",
		"sub/Inner.h": "using namespace FooBar;\n",
		"README.md":   "left alone\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	cmd, out := newTestRootCmd(t)
	cmd.AddCommand(newMigrateCmd())
	cmd.SetArgs([]string{"migrate", dir, "-o", reportPath})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "foo_bar.cc"))
	assert.FileExists(t, filepath.Join(dir, "foo_bar.h"))
	assert.FileExists(t, filepath.Join(dir, "sub", "inner.h"))
	assert.NoFileExists(t, filepath.Join(dir, "FooBar.cxx"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))

	cc, err := os.ReadFile(filepath.Join(dir, "foo_bar.cc"))
	require.NoError(t, err)
	assert.Contains(t, string(cc), "#include \"foo_bar.h\"")
	assert.Contains(t, string(cc), "namespace foobar {")

	assert.FileExists(t, reportPath)
	assert.Contains(t, out.String(), "refactor")
	assert.Contains(t, out.String(), "migrated 3 files")
}

func TestMigrateCmd_GlobModeSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"TopLevel.cxx":   "int t;\n",
		"sub/Nested.cxx": "int n;\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newMigrateCmd())
	cmd.SetArgs([]string{"migrate", "--glob", dir, "-o", reportPath})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "top_level.cc"))
	assert.FileExists(t, filepath.Join(dir, "sub", "Nested.cxx"))
	assert.NoFileExists(t, filepath.Join(dir, "sub", "nested.cc"))
}

func TestMigrateCmd_ExcludeFlag(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"KeepMe.h": "int k;\n",
		"SkipMe.h": "int s;\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newMigrateCmd())
	cmd.SetArgs([]string{"migrate", dir, "-o", reportPath, "-x", `SkipMe\.h$`})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "keep_me.h"))
	assert.FileExists(t, filepath.Join(dir, "SkipMe.h"))
}

func TestMigrateCmd_CollisionAbortsBeforeCommit(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"FooBar.h":  "int f;\n",
		"foo_bar.h": "int o;\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newMigrateCmd())
	cmd.SetArgs([]string{"migrate", dir, "-o", reportPath})

	require.Error(t, cmd.Execute())

	// Plan-time failure: the tree is untouched and no report was written.
	assert.FileExists(t, filepath.Join(dir, "FooBar.h"))
	assert.NoFileExists(t, reportPath)
}
