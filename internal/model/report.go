package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadStatus represents the outcome of loading one fixture.
type LoadStatus int

const (
	// Loaded indicates the fixture was resolved and decoded.
	Loaded LoadStatus = iota
	// RootNotFound indicates the anchor directory is absent from the cwd's ancestors.
	RootNotFound
	// FragmentUnresolved indicates no entry under the anchor matched the fragment.
	FragmentUnresolved
	// IOFailure indicates a file or the anchor could not be read.
	IOFailure
	// DecodeFailure indicates the file is not a valid fixture document.
	DecodeFailure
)

var loadStatusNames = map[LoadStatus]string{
	Loaded:             "loaded",
	RootNotFound:       "root_not_found",
	FragmentUnresolved: "fragment_unresolved",
	IOFailure:          "io_failure",
	DecodeFailure:      "decode_failure",
}

func (s LoadStatus) String() string {
	if name, ok := loadStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalYAML implements yaml.Marshaler.
func (s LoadStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *LoadStatus) UnmarshalYAML(value *yaml.Node) error {
	for status, name := range loadStatusNames {
		if name == value.Value {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown load status %q", value.Value)
}

// LoadReport is the result of loading one fragment during a batch scan.
type LoadReport struct {
	Fragment Path       `yaml:"fragment"`
	Found    Path       `yaml:"found,omitempty"`
	Function string     `yaml:"function,omitempty"`
	Input    string     `yaml:"input,omitempty"`
	Output   string     `yaml:"output,omitempty"`
	Status   LoadStatus `yaml:"status"`
	Error    string     `yaml:"error,omitempty"`
}

// OK reports whether the fixture was loaded.
func (r LoadReport) OK() bool {
	return r.Status == Loaded
}

// CountReports returns how many reports loaded and how many failed.
func CountReports(reports []LoadReport) (loaded, failed int) {
	for _, report := range reports {
		if report.OK() {
			loaded++
		} else {
			failed++
		}
	}

	return
}
