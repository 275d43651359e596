package planner

import (
	"encoding/json"
	"time"

	"meal-plan-seeder/internal/meal"
)

// DateLayout is the calendar-date format used in meal_plans.date.
const DateLayout = "2006-01-02"

// DailyPlan is one generated row of the meal_plans table.
type DailyPlan struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Date          time.Time       `json:"date"`
	RecoveryPhase meal.Phase      `json:"recoveryPhase"`
	Meals         []meal.Template `json:"meals"`
	Preferences   json.RawMessage `json:"preferences"` // always null for fixtures
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// DateString returns the plan's calendar date as YYYY-MM-DD.
func (p DailyPlan) DateString() string {
	return p.Date.Format(DateLayout)
}

// Day truncates t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// DaysBetween returns the whole number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}
