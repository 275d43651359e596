package planner

import (
	"time"

	"meal-plan-seeder/internal/meal"

	"github.com/google/uuid"
)

// DefaultTimeOfDay is when generated plans are stamped as created.
const DefaultTimeOfDay = 9 * time.Hour

// Generator builds one DailyPlan per calendar day around a surgery date.
type Generator struct {
	userID      string
	surgeryDate time.Time
	brackets    meal.Brackets
	catalog     meal.Catalog
	timeOfDay   time.Duration
	newID       func() string
}

// Option customises a Generator.
type Option func(*Generator)

// WithIDSource replaces the random UUID source, mainly for tests.
func WithIDSource(newID func() string) Option {
	return func(g *Generator) {
		g.newID = newID
	}
}

// WithTimeOfDay sets the created_at/updated_at offset from midnight.
func WithTimeOfDay(d time.Duration) Option {
	return func(g *Generator) {
		g.timeOfDay = d
	}
}

// NewGenerator creates a new Generator for a single user and surgery date.
func NewGenerator(userID string, surgeryDate time.Time, brackets meal.Brackets, catalog meal.Catalog, opts ...Option) *Generator {
	g := &Generator{
		userID:      userID,
		surgeryDate: Day(surgeryDate),
		brackets:    brackets,
		catalog:     catalog,
		timeOfDay:   DefaultTimeOfDay,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PhaseOn returns the recovery phase for a calendar date.
func (g *Generator) PhaseOn(date time.Time) meal.Phase {
	return g.brackets.PhaseFor(DaysBetween(g.surgeryDate, date))
}

// Generate returns the plans for every day in [start, end], in date order.
// An inverted range yields no plans.
func (g *Generator) Generate(start, end time.Time) []DailyPlan {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return []DailyPlan{}
	}

	plans := make([]DailyPlan, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		phase := g.PhaseOn(d)
		stamp := d.Add(g.timeOfDay)

		plans = append(plans, DailyPlan{
			ID:            g.newID(),
			UserID:        g.userID,
			Date:          d,
			RecoveryPhase: phase,
			Meals:         g.catalog.MealsFor(phase),
			CreatedAt:     stamp,
			UpdatedAt:     stamp,
		})
	}
	return plans
}
