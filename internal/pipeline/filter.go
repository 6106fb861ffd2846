package pipeline

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
)

// Criteria is a conjunctive tile predicate. Zero-valued conditions are
// absent: an empty Hilliness matches any terrain, false Require flags
// skip the presence checks, and a nil MinGrowingDays skips the
// growing-day threshold. All present conditions AND together.
type Criteria struct {
	Hilliness      domain.Hilliness `yaml:"hilliness"`
	RequireRiver   bool             `yaml:"require_river"`
	RequireRoad    bool             `yaml:"require_road"`
	MinGrowingDays *int             `yaml:"min_growing_days"`
}

// DefaultCriteria is the built-in --filter predicate: a mountainous
// tile with a river, a road, and year-round growing.
func DefaultCriteria() Criteria {
	minDays := 60
	return Criteria{
		Hilliness:      domain.HillinessMountainous,
		RequireRiver:   true,
		RequireRoad:    true,
		MinGrowingDays: &minDays,
	}
}

// Matches reports whether the record satisfies every present
// condition. Records without a computed growing-day count never match;
// they lack the temperature fields the predicate is defined over.
func (c Criteria) Matches(rec *domain.TileRecord) bool {
	if !rec.Annotated {
		return false
	}
	if c.Hilliness != "" && rec.Hilliness != c.Hilliness {
		return false
	}
	if c.RequireRiver && !rec.HasRiver {
		return false
	}
	if c.RequireRoad && !rec.HasRoad {
		return false
	}
	if c.MinGrowingDays != nil && rec.GrowingDays < *c.MinGrowingDays {
		return false
	}
	return true
}

// String renders the criteria for the report's filter echo.
func (c Criteria) String() string {
	var parts []string
	if c.Hilliness != "" {
		parts = append(parts, fmt.Sprintf("hilliness=%s", c.Hilliness))
	}
	if c.RequireRiver {
		parts = append(parts, "river=yes")
	}
	if c.RequireRoad {
		parts = append(parts, "road=yes")
	}
	if c.MinGrowingDays != nil {
		parts = append(parts, fmt.Sprintf("growingDays>=%d", *c.MinGrowingDays))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " AND ")
}
