package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
	"github.com/couchcryptid/world-tile-stats/internal/pipeline"
	"github.com/couchcryptid/world-tile-stats/internal/snapshot"
)

// phase tracks pass/fail for one validation scenario.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// runValidation executes every built-in scenario, prints all results,
// and returns 1 if any scenario failed. Scenarios never abort early.
func runValidation(w io.Writer) int {
	tuning := domain.DefaultTuning()

	phases := []*phase{
		validateCurve(tuning),
		validateEquatorialTile(tuning),
		validatePolarTile(tuning),
		validateYearRoundShortcut(tuning),
		validateFromExtremes(tuning),
		validateParser(),
		validateDayMultiples(tuning),
		validateFilterIdempotence(tuning),
	}

	fmt.Fprintln(w, "=== Growing Days Validation ===")
	fmt.Fprintln(w)

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-46s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

func validateCurve(tuning domain.Tuning) *phase {
	p := &phase{name: "Curve interpolation (clamp + lerp)"}

	cases := []struct {
		x, want float64
	}{
		{-1, 3},
		{2, 28},
		{0.05, 3.5},
		{0, 3},
		{0.1, 4},
		{1, 28},
	}
	for _, c := range cases {
		got := tuning.Curve.Amplitude(c.x)
		if math.Abs(got-c.want) > 1e-9 {
			p.errorf("amplitude(%g): expected %g, got %g", c.x, c.want, got)
		}
	}
	return p
}

func validateEquatorialTile(tuning domain.Tuning) *phase {
	p := &phase{name: "Equatorial tile grows year-round"}

	loc := domain.Location{BaseTemperature: 25, EquatorDistance: 0, Latitude: 0}
	if days := tuning.GrowingDays(loc); days != 60 {
		p.errorf("base 25C at equator: expected 60 growing days, got %d", days)
	}
	return p
}

func validatePolarTile(tuning domain.Tuning) *phase {
	p := &phase{name: "Polar tile has a limited season"}

	loc := domain.Location{BaseTemperature: 0, EquatorDistance: 1, Latitude: 90}
	if days := tuning.GrowingDays(loc); days >= 60 {
		p.errorf("base 0C at pole: expected fewer than 60 growing days, got %d", days)
	}
	return p
}

func validateYearRoundShortcut(tuning domain.Tuning) *phase {
	p := &phase{name: "Year-round shortcut from extremes"}

	cases := []struct {
		min, max float64
		want     bool
	}{
		{10, 35, true},
		{5, 35, false},
		{10, 45, false},
	}
	for _, c := range cases {
		if got := tuning.YearRound(c.min, c.max); got != c.want {
			p.errorf("YearRound(%g, %g): expected %v, got %v", c.min, c.max, c.want, got)
		}
	}
	return p
}

func validateFromExtremes(tuning domain.Tuning) *phase {
	p := &phase{name: "Full computation from extremes"}

	if days := tuning.GrowingDaysFromExtremes(10, 35); days != 60 {
		p.errorf("extremes (10, 35): expected 60 growing days, got %d", days)
	}
	if days := tuning.GrowingDaysFromExtremes(-20, 15); days >= 60 {
		p.errorf("extremes (-20, 15): expected fewer than 60 growing days, got %d", days)
	}
	return p
}

func validateParser() *phase {
	p := &phase{name: "Snapshot parser round-trip"}

	input := "TILE 1\n  temperature: 20.5\n  Rivers: null\nTILE 2\n  temperature: 18\n  Rivers: [...]\n"
	parser := snapshot.NewParser(slog.New(slog.DiscardHandler))
	tiles, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		p.errorf("parse: %v", err)
		return p
	}
	if len(tiles) != 2 {
		p.errorf("expected 2 tiles, got %d", len(tiles))
		return p
	}

	if tiles[0].ID != 1 || tiles[1].ID != 2 {
		p.errorf("expected tile IDs 1 and 2, got %d and %d", tiles[0].ID, tiles[1].ID)
	}
	if tiles[0].HasRiver {
		p.errorf("tile 1: Rivers null should mean no river")
	}
	if tiles[0].Temperature != 20.5 {
		p.errorf("tile 1: expected temperature 20.5, got %g", tiles[0].Temperature)
	}
	if !tiles[1].HasRiver {
		p.errorf("tile 2: Rivers [...] should mean has river")
	}
	if v, ok := tiles[1].Attrs[domain.KeyTemperature].Float64(); !ok || v != 18 {
		p.errorf("tile 2: integer temperature must be usable as a number, got %v (%v)", v, ok)
	}
	return p
}

func validateDayMultiples(tuning domain.Tuning) *phase {
	p := &phase{name: "Growing days are multiples of 5 in [0,60]"}

	for base := -40.0; base <= 40.0; base += 10 {
		for dist := 0.0; dist <= 1.0; dist += 0.25 {
			for _, lat := range []float64{60, -60} {
				loc := domain.Location{BaseTemperature: base, EquatorDistance: dist, Latitude: lat}
				days := tuning.GrowingDays(loc)
				if days%5 != 0 || days < 0 || days > 60 {
					p.errorf("base=%g dist=%g lat=%g: got %d days", base, dist, lat, days)
				}
			}
		}
	}
	return p
}

func validateFilterIdempotence(tuning domain.Tuning) *phase {
	p := &phase{name: "Filter is idempotent"}

	tiles := []domain.TileRecord{
		{ID: 1, Hilliness: domain.HillinessMountainous, HasRiver: true, HasRoad: true, GrowingDays: 60, Annotated: true},
		{ID: 2, Hilliness: domain.HillinessFlat, HasRiver: true, HasRoad: true, GrowingDays: 60, Annotated: true},
		{ID: 3, Hilliness: domain.HillinessMountainous, HasRiver: false, HasRoad: true, GrowingDays: 60, Annotated: true},
	}
	criteria := pipeline.DefaultCriteria()

	var first []domain.TileRecord
	for i := range tiles {
		if criteria.Matches(&tiles[i]) {
			first = append(first, tiles[i])
		}
	}
	var second []domain.TileRecord
	for i := range first {
		if criteria.Matches(&first[i]) {
			second = append(second, first[i])
		}
	}

	if len(first) != 1 || first[0].ID != 1 {
		p.errorf("expected only tile 1 to match, got %d matches", len(first))
	}
	if len(second) != len(first) {
		p.errorf("refiltering changed the result: %d -> %d", len(first), len(second))
	}
	for i := range second {
		if second[i].ID != first[i].ID {
			p.errorf("refiltering changed ordering at index %d", i)
		}
	}
	return p
}
