// Package request handles the raw invocation inputs: comma-separated
// throughput strings and YAML/JSON request files.
package request

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Request is a forecast invocation loaded from a file. TargetDate selects
// how-many mode, StoriesRemaining selects when mode; the commands reject
// files missing the field they need.
type Request struct {
	Throughput       []int   `yaml:"throughput" json:"throughput"`
	TargetDate       string  `yaml:"target_date" json:"target_date,omitempty"`
	StoriesRemaining int     `yaml:"stories_remaining" json:"stories_remaining,omitempty"`
	Confidence       float64 `yaml:"confidence" json:"confidence,omitempty"`
	Simulations      int     `yaml:"simulations" json:"simulations,omitempty"`
	StartDate        string  `yaml:"start_date" json:"start_date,omitempty"`
}

// Load reads a request file. YAML is a superset of JSON, so both formats
// parse through the same path.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request file %s: %w", path, err)
	}
	return &req, nil
}

// ParseThroughput splits a comma-separated list of daily counts.
func ParseThroughput(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid throughput value %q: %w", trimmed, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("throughput list is empty")
	}
	return values, nil
}
