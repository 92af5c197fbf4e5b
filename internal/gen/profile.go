// Package gen supports offline plan generation: profile files on disk in,
// plan documents out, with a local cache so regenerating an unchanged
// profile is free.
package gen

import (
	"fmt"
	"os"

	"github.com/herrenbrad/runplans/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads an athlete profile from a YAML file and validates it.
func LoadProfile(path string) (*models.AthleteProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p models.AthleteProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
