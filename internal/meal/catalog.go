package meal

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	minMealsPerDay = 3
	maxMealsPerDay = 5
)

// ErrInvalidCatalog is returned when a catalog cannot serve every phase.
var ErrInvalidCatalog = errors.New("invalid meal catalog")

// Catalog maps each recovery phase to the ordered meals served on a day of that phase.
type Catalog map[Phase][]Template

// MealsFor returns a copy of the meal list for a phase.
func (c Catalog) MealsFor(p Phase) []Template {
	src := c[p]
	out := make([]Template, len(src))
	for i, t := range src {
		out[i] = t.Clone()
	}
	return out
}

// Validate checks every phase has between three and five well-formed meals
// tagged with that phase.
func (c Catalog) Validate() error {
	validate := validator.New()

	for _, phase := range Phases {
		meals, ok := c[phase]
		if !ok {
			return fmt.Errorf("%w: no meals for phase %q", ErrInvalidCatalog, phase)
		}
		if len(meals) < minMealsPerDay || len(meals) > maxMealsPerDay {
			return fmt.Errorf("%w: phase %q has %d meals, want %d-%d",
				ErrInvalidCatalog, phase, len(meals), minMealsPerDay, maxMealsPerDay)
		}

		seen := make(map[string]struct{}, len(meals))
		for _, t := range meals {
			if err := validate.Struct(t); err != nil {
				return fmt.Errorf("%w: meal %q: %v", ErrInvalidCatalog, t.ID, err)
			}
			if t.Phase != phase {
				return fmt.Errorf("%w: meal %q is tagged %q but listed under %q",
					ErrInvalidCatalog, t.ID, t.Phase, phase)
			}
			if _, dup := seen[t.ID]; dup {
				return fmt.Errorf("%w: duplicate meal id %q in phase %q", ErrInvalidCatalog, t.ID, phase)
			}
			seen[t.ID] = struct{}{}
		}
	}

	for phase := range c {
		if phase != PhaseLiquid && phase != PhaseSoft && phase != PhaseRegular {
			return fmt.Errorf("%w: unknown phase %q", ErrInvalidCatalog, phase)
		}
	}
	return nil
}
