package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// OverlayEntry is one vendor mapping in a YAML overlay file:
//
//	"8003":
//	  type: StrongReferenceArray
//	  name: Avid Attributes
//	  description: ""
type OverlayEntry struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// LoadOverlay reads a vendor overlay file into the mapping form
// Registry.Inject accepts. Keys are short hex UL fragments.
func LoadOverlay(path string) (map[string]rp210.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read overlay %q: %w", path, err)
	}

	var raw map[string]OverlayEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse overlay %q: %w", path, err)
	}

	entries := make(map[string]rp210.Entry, len(raw))
	for fragment, e := range raw {
		entries[fragment] = rp210.Entry{
			Type:        e.Type,
			Name:        e.Name,
			Description: e.Description,
		}
	}
	return entries, nil
}
