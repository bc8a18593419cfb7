package adapter

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// ReportsFileName is the file written inside the reports directory.
const ReportsFileName = "scan.yaml"

// ReportStore persists batch scan reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.LoadReport) error
	LoadReports(path m.Path) ([]m.LoadReport, error)
}

type reportDocument struct {
	Version int            `yaml:"version"`
	Reports []m.LoadReport `yaml:"reports"`
}

const reportDocumentVersion = 1

// YAMLReportStore stores reports as a single YAML document per directory.
type YAMLReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore creates a ReportStore backed by fs.
func NewReportStore(fs SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReports writes reports to <path>/scan.yaml, creating path if needed.
func (s *YAMLReportStore) SaveReports(path m.Path, reports []m.LoadReport) error {
	if err := s.fs.MkdirAll(path); err != nil {
		return fmt.Errorf("create reports dir %s: %w", path, err)
	}

	if reports == nil {
		reports = []m.LoadReport{}
	}

	content, err := yaml.Marshal(reportDocument{Version: reportDocumentVersion, Reports: reports})
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	target := s.fs.JoinPath(string(path), ReportsFileName)
	if err := s.fs.WriteFile(target, content, 0o600); err != nil {
		return fmt.Errorf("write reports %s: %w", target, err)
	}

	slog.Debug("saved scan reports", "path", target, "count", len(reports))

	return nil
}

// LoadReports reads reports previously written by SaveReports.
func (s *YAMLReportStore) LoadReports(path m.Path) ([]m.LoadReport, error) {
	target := s.fs.JoinPath(string(path), ReportsFileName)

	content, err := s.fs.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read reports %s: %w", target, err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode reports %s: %w", target, err)
	}

	if doc.Version != reportDocumentVersion {
		return nil, fmt.Errorf("unsupported reports version %d in %s", doc.Version, target)
	}

	return doc.Reports, nil
}
