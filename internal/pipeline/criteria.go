package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
)

// LoadCriteria reads filter criteria from a YAML file, e.g.:
//
//	hilliness: Mountainous
//	require_river: true
//	require_road: true
//	min_growing_days: 60
//
// Omitted fields stay absent from the predicate.
func LoadCriteria(path string) (Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Criteria{}, fmt.Errorf("read criteria file %s: %w", path, err)
	}

	var c Criteria
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Criteria{}, fmt.Errorf("parse criteria file %s: %w", path, err)
	}

	if c.Hilliness != "" {
		if _, ok := domain.ParseHilliness(string(c.Hilliness)); !ok {
			return Criteria{}, fmt.Errorf("criteria file %s: unknown hilliness %q", path, c.Hilliness)
		}
	}
	if c.MinGrowingDays != nil && *c.MinGrowingDays < 0 {
		return Criteria{}, fmt.Errorf("criteria file %s: min_growing_days must be non-negative", path)
	}
	return c, nil
}
