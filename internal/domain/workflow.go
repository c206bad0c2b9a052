// Package domain implements the migration workflow: staging a rename plan
// for a source tree and committing it to disk in a fixed order.
package domain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"snakeshift.dev/pkg/snakeshift/internal/adapter"
	"snakeshift.dev/pkg/snakeshift/internal/controller"
	m "snakeshift.dev/pkg/snakeshift/internal/model"
	"snakeshift.dev/pkg/snakeshift/internal/naming"
	"snakeshift.dev/pkg/snakeshift/internal/rewrite"
)

// PlanArgs selects what to migrate and how candidates are discovered.
type PlanArgs struct {
	Root       m.Path
	Mode       m.Mode
	Extensions m.ExtensionMap
	Exclude    []string
}

// MigrateArgs drives a full plan-and-commit run. Report names the path the
// migration report is written to; empty disables the report.
type MigrateArgs struct {
	PlanArgs

	Report m.Path
}

// PreviewArgs drives a dry run that only displays the staged plan.
type PreviewArgs struct {
	PlanArgs

	ShowDiff bool
}

// Migrator stages and applies snake_case migrations. Plan never touches the
// disk; Commit applies a staged plan action by action, rewriting content
// before renaming, strictly sequentially.
type Migrator interface {
	Plan(args PlanArgs) (m.Plan, error)
	Commit(plan m.Plan) (m.Report, error)
	Migrate(args MigrateArgs) error
	Preview(args PreviewArgs) error
	ShowReport(path m.Path) error
}

type migrator struct {
	fs    adapter.SourceFS
	store adapter.ReportStore
	ui    controller.UI
}

// NewMigrator wires a Migrator from its filesystem, report store and UI
// dependencies.
func NewMigrator(fs adapter.SourceFS, store adapter.ReportStore, ui controller.UI) Migrator {
	return &migrator{fs: fs, store: store, ui: ui}
}

// Plan discovers qualifying files under args.Root, rewrites their content in
// memory and computes the rename destinations. Actions come back sorted by
// original path. Destination collisions, either between two staged actions
// or with a file already on disk, fail the plan before anything is touched.
func (w *migrator) Plan(args PlanArgs) (m.Plan, error) {
	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return m.Plan{}, err
	}

	if _, err := w.fs.FileInfo(args.Root); err != nil {
		return m.Plan{}, fmt.Errorf("root path error: %w", err)
	}

	paths, err := w.discover(args)
	if err != nil {
		return m.Plan{}, err
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	plan := m.Plan{Root: args.Root}
	claimed := make(map[m.Path]m.Path, len(paths))

	for _, path := range paths {
		if matchesAny(exclude, string(path)) {
			slog.Debug("excluded file", "path", path)
			continue
		}

		original, err := w.fs.ReadFile(path)
		if err != nil {
			return m.Plan{}, fmt.Errorf("read %s: %w", path, err)
		}

		action := m.Action{
			OldPath:  path,
			NewPath:  renameTarget(path, args.Extensions),
			Original: original,
			Content:  rewrite.Content(original),
		}

		if prev, ok := claimed[action.NewPath]; ok {
			return m.Plan{}, fmt.Errorf("%w: both %s and %s map to %s",
				adapter.ErrDestinationExists, prev, path, action.NewPath)
		}

		claimed[action.NewPath] = path

		if action.Renamed() {
			if _, err := w.fs.FileInfo(action.NewPath); err == nil {
				return m.Plan{}, fmt.Errorf("%w: %s blocks rename of %s",
					adapter.ErrDestinationExists, action.NewPath, path)
			} else if !os.IsNotExist(err) {
				return m.Plan{}, fmt.Errorf("stat %s: %w", action.NewPath, err)
			}
		}

		plan.Actions = append(plan.Actions, action)
	}

	slog.Debug("plan staged", "root", args.Root, "mode", args.Mode, "files", len(plan.Actions))

	return plan, nil
}

// Commit applies the staged actions in plan order. Per file the rewritten
// content lands on disk first, keyed by the original path, and only then is
// the file renamed. The first failure aborts the run; the returned report
// lists exactly the actions that completed.
func (w *migrator) Commit(plan m.Plan) (m.Report, error) {
	report := m.Report{Root: plan.Root}

	for _, action := range plan.Actions {
		w.ui.AnnounceFile(action.OldPath)

		if action.Rewritten() {
			info, err := w.fs.FileInfo(action.OldPath)
			if err != nil {
				return report, fmt.Errorf("stat %s: %w", action.OldPath, err)
			}

			if err := w.fs.WriteFile(action.OldPath, action.Content, info.Mode().Perm()); err != nil {
				return report, fmt.Errorf("rewrite %s: %w", action.OldPath, err)
			}
		}

		if action.Renamed() {
			if err := w.fs.Rename(action.OldPath, action.NewPath); err != nil {
				return report, fmt.Errorf("rename %s: %w", action.OldPath, err)
			}
		}

		slog.Info("migrated file",
			"from", action.OldPath, "to", action.NewPath, "rewritten", action.Rewritten())

		report.Entries = append(report.Entries, m.ReportEntry{
			From:      action.OldPath,
			To:        action.NewPath,
			Rewritten: action.Rewritten(),
		})
	}

	return report, nil
}

// Migrate runs Plan and Commit and persists the report. The report is saved
// even when the commit aborts partway, so the progress boundary stays
// inspectable.
func (w *migrator) Migrate(args MigrateArgs) error {
	plan, err := w.Plan(args.PlanArgs)
	if err != nil {
		return err
	}

	report, commitErr := w.Commit(plan)

	if args.Report != "" {
		if err := w.store.Save(args.Report, report); err != nil {
			if commitErr != nil {
				slog.Warn("report not saved after aborted commit", "path", args.Report, "error", err)
				return commitErr
			}

			return err
		}
	}

	if commitErr != nil {
		slog.Error("migration aborted", "root", args.Root, "error", commitErr)
		return commitErr
	}

	w.ui.DisplaySummary(report)

	return nil
}

// Preview stages a plan and displays it without committing anything.
func (w *migrator) Preview(args PreviewArgs) error {
	plan, err := w.Plan(args.PlanArgs)
	if err != nil {
		return err
	}

	w.ui.DisplayPlan(plan)

	if args.ShowDiff {
		for _, action := range plan.Actions {
			if err := w.ui.DisplayDiff(action); err != nil {
				return err
			}
		}
	}

	return nil
}

// ShowReport loads a saved migration report and displays it.
func (w *migrator) ShowReport(path m.Path) error {
	report, err := w.store.Load(path)
	if err != nil {
		return err
	}

	w.ui.DisplayReport(report)

	return nil
}

// discover lists candidate files per the selected mode, unfiltered by the
// exclude patterns and unsorted.
func (w *migrator) discover(args PlanArgs) ([]m.Path, error) {
	if args.Mode == m.ModeGlob {
		return w.discoverGlob(args)
	}

	var paths []m.Path

	err := w.fs.Walk(args.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !args.Extensions.Qualifies(filepath.Ext(path)) {
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", args.Root, err)
	}

	return paths, nil
}

// discoverGlob is the legacy flat-directory discovery: one glob per
// recognized extension, no recursion.
func (w *migrator) discoverGlob(args PlanArgs) ([]m.Path, error) {
	var paths []m.Path

	for _, ext := range []string{args.Extensions.Source, args.Extensions.Header} {
		matches, err := w.fs.Glob(args.Root, "*"+ext)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			info, err := w.fs.FileInfo(match)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", match, err)
			}

			if info.IsDir() {
				continue
			}

			paths = append(paths, match)
		}
	}

	return paths, nil
}

// renameTarget computes the post-migration path for a qualifying file: the
// base name through the word-splitting transform with the lower-case
// fallback, the extension through the extension map.
func renameTarget(path m.Path, ext m.ExtensionMap) m.Path {
	base := filepath.Base(string(path))
	oldExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, oldExt)

	newBase := naming.FileBase(stem) + ext.Rename(oldExt)

	return m.Path(filepath.Join(filepath.Dir(string(path)), newBase))
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
