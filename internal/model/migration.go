// Package model defines the types shared between the discovery, rewrite and
// CLI layers of snakeshift.
package model

// Path represents a file system path.
type Path string

// Mode selects how candidate files are discovered.
type Mode string

// Available discovery modes.
const (
	// ModeWalk recursively visits every file under the root directory.
	ModeWalk Mode = "walk"

	// ModeGlob matches files directly under the root against the extension
	// patterns without descending into subdirectories. This mirrors the
	// flat layout of older project trees.
	ModeGlob Mode = "glob"
)

// ExtensionMap describes which files qualify for migration and how their
// extensions change on rename. Source files move to the target extension,
// header files keep theirs.
type ExtensionMap struct {
	Source string
	Target string
	Header string
}

// DefaultExtensions returns the conventional mapping: ".cxx" sources renamed
// to ".cc", ".h" headers left alone.
func DefaultExtensions() ExtensionMap {
	return ExtensionMap{
		Source: ".cxx",
		Target: ".cc",
		Header: ".h",
	}
}

// Qualifies reports whether ext is one of the two recognized extensions.
func (e ExtensionMap) Qualifies(ext string) bool {
	return ext == e.Source || ext == e.Header
}

// Rename maps a qualifying extension to the one used after the rename.
// Unrecognized extensions pass through unchanged.
func (e ExtensionMap) Rename(ext string) string {
	if ext == e.Source {
		return e.Target
	}

	return ext
}

// Action is one staged file migration: the rewritten content and the rename
// destination, both computed before anything touches the disk.
type Action struct {
	OldPath  Path
	NewPath  Path
	Original []byte
	Content  []byte
}

// Renamed reports whether committing the action moves the file.
func (a Action) Renamed() bool {
	return a.OldPath != a.NewPath
}

// Rewritten reports whether committing the action changes the file content.
func (a Action) Rewritten() bool {
	return string(a.Original) != string(a.Content)
}

// Plan is the full ordered set of actions for one run. Actions are sorted by
// OldPath so a commit always applies them in the same order.
type Plan struct {
	Root    Path
	Actions []Action
}

// Report records what a commit actually did, in commit order. A report of a
// run that failed partway contains exactly the actions that completed.
type Report struct {
	Root    Path          `yaml:"root"`
	Entries []ReportEntry `yaml:"entries"`
}

// ReportEntry describes a single committed file migration.
type ReportEntry struct {
	From      Path `yaml:"from"`
	To        Path `yaml:"to"`
	Rewritten bool `yaml:"rewritten"`
}
