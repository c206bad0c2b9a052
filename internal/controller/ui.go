// Package controller renders migration progress, plans and reports for the
// snakeshift CLI.
package controller

import (
	"os"

	"golang.org/x/term"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

// UI is the output surface of the migration workflow. Implementations decide
// how plans, per-file progress and summaries reach the user.
type UI interface {
	// AnnounceFile prints the per-file progress line before a file is
	// committed.
	AnnounceFile(path m.Path)

	// DisplayPlan renders the staged actions without touching the disk.
	DisplayPlan(plan m.Plan)

	// DisplayDiff renders the content rewrite of a single action as a
	// unified diff.
	DisplayDiff(action m.Action) error

	// DisplayReport renders a migration report.
	DisplayReport(report m.Report)

	// DisplaySummary prints the closing line after a commit.
	DisplaySummary(report m.Report)
}

// IsTTY reports whether f is attached to a terminal, which gates styled
// output.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
