package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

// ReportStore persists migration reports so a user can inspect what a run
// did, including how far a failed run progressed.
type ReportStore interface {
	Save(path m.Path, report m.Report) error
	Load(path m.Path) (m.Report, error)
}

// YAMLReportStore stores reports as a single YAML document on disk.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save marshals the report and writes it to path, replacing any previous
// report there.
func (s *YAMLReportStore) Save(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// Load reads a previously saved report from path.
func (s *YAMLReportStore) Load(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
