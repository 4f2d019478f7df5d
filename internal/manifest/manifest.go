// Package manifest provides parsing and sanity checks for the packed orb
// manifest (tmp.yml) before it is handed to the remote validator. A garbled
// or empty pack fails here with a local message instead of an opaque
// validator error.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest represents the packed orb document structure
type Manifest struct {
	Version     float64                `yaml:"version"`
	Description string                 `yaml:"description"`
	Commands    map[string]interface{} `yaml:"commands"`
	Jobs        map[string]interface{} `yaml:"jobs"`
	Executors   map[string]interface{} `yaml:"executors"`
}

// Load loads and parses a packed manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	return &m, nil
}

// Validate checks the pack produced a plausible orb document
func (m *Manifest) Validate() error {
	if m.Version == 0 {
		return fmt.Errorf("manifest has no config version; pack likely produced an empty document")
	}

	if len(m.Commands) == 0 && len(m.Jobs) == 0 && len(m.Executors) == 0 {
		return fmt.Errorf("manifest declares no commands, jobs, or executors")
	}

	return nil
}
