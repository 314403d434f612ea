package review

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry associates review markers with one verification
// function. Any subset of markers may be present.
type Entry struct {
	// Function is the qualified name of the verification
	// function, e.g. "steps.PartitionDisk".
	Function string `yaml:"function" json:"function"`

	// Aware is the cheat documentation marker, if present.
	Aware *Aware `yaml:"aware,omitempty" json:"aware,omitempty"`

	// Canary marks the function as a weakening canary.
	Canary *Canary `yaml:"canary,omitempty" json:"canary,omitempty"`

	// Reviewed records the most recent human review.
	Reviewed *Reviewed `yaml:"reviewed,omitempty" json:"reviewed,omitempty"`
}

// Manifest is the on-disk review manifest: one entry per
// annotated verification function.
type Manifest struct {
	// Version identifies the manifest schema version.
	Version string `yaml:"version" json:"version"`

	// Entries holds the annotated functions in file order.
	Entries []Entry `yaml:"entries" json:"entries"`
}

// LoadManifest reads a YAML review manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read manifest %s: %w", path, err,
		)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(
			"failed to parse manifest %s: %w", path, err,
		)
	}

	return &m, nil
}

// Save writes the manifest to path as YAML.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal manifest: %w", err,
		)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(
			"failed to write manifest %s: %w", path, err,
		)
	}

	return nil
}

// Find returns the entry for the given function, or nil if the
// function is not annotated.
func (m *Manifest) Find(function string) *Entry {
	for i := range m.Entries {
		if m.Entries[i].Function == function {
			return &m.Entries[i]
		}
	}
	return nil
}

// Validate checks every Aware marker against the call-site
// metadata contract: all four fields present, severity from the
// closed set, at least one cheat vector. A manifest is the one
// place metadata exists outside a call site, so this is where
// the non-empty invariant gets re-checked.
func (m *Manifest) Validate() error {
	for _, e := range m.Entries {
		if e.Function == "" {
			return fmt.Errorf(
				"manifest: entry with empty function name",
			)
		}
		if e.Aware == nil {
			continue
		}
		if err := e.Aware.Metadata().Validate(); err != nil {
			return fmt.Errorf(
				"manifest: %s: %w", e.Function, err,
			)
		}
	}
	return nil
}
