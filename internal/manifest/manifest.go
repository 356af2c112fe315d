// Package manifest loads the externally supplied patch manifest: the
// expected ESXi build per release version, used to decide whether a
// host is properly patched.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry pins one component release to its expected build.
type Entry struct {
	Component string `yaml:"component"`
	Version   string `yaml:"version"`
	Build     string `yaml:"build"`
}

// Manifest is the loaded set of expected patch levels.
type Manifest struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads and validates a YAML manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes manifest bytes.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Entries) == 0 {
		return nil, errors.New("manifest has no entries")
	}
	for i, e := range m.Entries {
		if strings.TrimSpace(e.Version) == "" || strings.TrimSpace(e.Build) == "" {
			return nil, fmt.Errorf("manifest entry %d: version and build are required", i)
		}
	}
	return &m, nil
}

// ExpectedBuild returns the expected build for a release version, or
// ok=false when the manifest does not cover it.
func (m *Manifest) ExpectedBuild(version string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, e := range m.Entries {
		if e.Version == version {
			return e.Build, true
		}
	}
	return "", false
}
