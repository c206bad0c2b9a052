package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

func TestReportCmd_DisplaysSavedReport(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, reportStore.Save(m.Path(reportPath), m.Report{
		Root: "src",
		Entries: []m.ReportEntry{
			{From: "src/FooBar.h", To: "src/foo_bar.h", Rewritten: true},
		},
	}))

	cmd, out := newTestRootCmd(t)
	cmd.AddCommand(newReportCmd())
	cmd.SetArgs([]string{"report", "-o", reportPath})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "src/FooBar.h")
	assert.Contains(t, out.String(), "src/foo_bar.h")
}

func TestReportCmd_MissingReportFails(t *testing.T) {
	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newReportCmd())
	cmd.SetArgs([]string{"report", "-o", filepath.Join(t.TempDir(), "absent.yaml")})

	require.Error(t, cmd.Execute())
}
