package netprofile

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is the exported view of both locations.
type Report struct {
	GeneratedAt time.Time        `yaml:"generated_at"`
	Host        string           `yaml:"host,omitempty"`
	Locations   []LocationReport `yaml:"locations"`
}

// LocationReport lists the entries of one location, or the error that
// prevented reading it.
type LocationReport struct {
	Name    string  `yaml:"name"`
	Path    string  `yaml:"path"`
	Entries []Entry `yaml:"entries"`
	Error   string  `yaml:"error,omitempty"`
}

// BuildReport lists every location. Read failures are kept in the report.
func (m *Manager) BuildReport() *Report {
	host, _ := os.Hostname()
	report := &Report{
		GeneratedAt: m.now().UTC(),
		Host:        host,
	}
	for _, loc := range Locations() {
		lr := LocationReport{Name: loc.String(), Path: `HKLM\` + loc.Path()}
		entries, err := m.List(loc)
		if err != nil {
			lr.Error = err.Error()
		}
		lr.Entries = entries
		report.Locations = append(report.Locations, lr)
	}
	return report
}

// WriteReport encodes report as YAML.
func WriteReport(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// ExportFile writes a fresh report to path.
func (m *Manager) ExportFile(path string) (*Report, error) {
	report := m.BuildReport()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteReport(f, report); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing export file: %w", err)
	}
	return report, nil
}
