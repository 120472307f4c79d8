package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the default scenario merged with the YAML file at path.
// An empty path yields the defaults unchanged. The merged scenario is
// validated before being returned.
func Load(path string) (*Scenario, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
