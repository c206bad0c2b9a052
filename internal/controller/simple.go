package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

const diffContextLines = 3

// SimpleUI implements UI with plain line output through a cobra Command,
// optionally styled when stdout is a terminal.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a SimpleUI writing to the command's output stream.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

var summaryStyle = lipgloss.NewStyle().Bold(true)

// AnnounceFile prints the progress line for one file.
func (s *SimpleUI) AnnounceFile(path m.Path) {
	s.printf("refactor %s ..\n", path)
}

// DisplayPlan renders the staged actions as a table.
func (s *SimpleUI) DisplayPlan(plan m.Plan) {
	renames := 0
	rewrites := 0

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"From", "To", "Rewrite"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, action := range plan.Actions {
		rewrite := "no"
		if action.Rewritten() {
			rewrite = "yes"
			rewrites++
		}

		if action.Renamed() {
			renames++
		}

		table.Append([]string{string(action.OldPath), string(action.NewPath), rewrite})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d files", len(plan.Actions)),
		fmt.Sprintf("%d renames", renames),
		fmt.Sprintf("%d", rewrites),
	})

	table.Render()

	s.printf("\n%s", buf.String())
}

// DisplayDiff renders the staged content change of one action as a unified
// diff. Actions without a content change print nothing.
func (s *SimpleUI) DisplayDiff(action m.Action) error {
	if !action.Rewritten() {
		return nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(action.Original)),
		B:        difflib.SplitLines(string(action.Content)),
		FromFile: string(action.OldPath),
		ToFile:   string(action.NewPath),
		Context:  diffContextLines,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", action.OldPath, err)
	}

	s.printf("%s", text)

	return nil
}

// DisplayReport renders a saved migration report as a table.
func (s *SimpleUI) DisplayReport(report m.Report) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"From", "To", "Rewritten"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, entry := range report.Entries {
		rewritten := "no"
		if entry.Rewritten {
			rewritten = "yes"
		}

		table.Append([]string{string(entry.From), string(entry.To), rewritten})
	}

	table.Render()

	s.printf("Migration of %s\n\n%s", report.Root, buf.String())
}

// DisplaySummary prints the closing line after a commit.
func (s *SimpleUI) DisplaySummary(report m.Report) {
	renamed := 0
	rewritten := 0

	for _, entry := range report.Entries {
		if entry.From != entry.To {
			renamed++
		}

		if entry.Rewritten {
			rewritten++
		}
	}

	line := fmt.Sprintf("migrated %d files (%d renamed, %d rewritten)", len(report.Entries), renamed, rewritten)
	if s.styled {
		line = summaryStyle.Render(line)
	}

	s.printf("%s\n", line)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
