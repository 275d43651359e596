// Package fixture renders generated meal plans as SQL seed statements.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"meal-plan-seeder/internal/meal"
	"meal-plan-seeder/internal/planner"
)

// Style selects the statement shape written for each plan.
type Style string

const (
	// StyleInsert writes a full-row INSERT into "public"."meal_plans".
	StyleInsert Style = "insert"
	// StyleUpsert writes a four-column INSERT ... ON CONFLICT (user_id, date) DO UPDATE.
	StyleUpsert Style = "upsert"
)

// TimestampLayout renders created_at/updated_at, e.g. 2026-01-01T09:00:00+00.
const TimestampLayout = "2006-01-02T15:04:05-07"

// Renderer turns a single plan into one SQL statement.
type Renderer interface {
	Statement(p planner.DailyPlan) (string, error)
	// Separator is placed between consecutive statements in the output file.
	Separator() string
}

// NewRenderer returns the renderer for a style.
func NewRenderer(style Style) (Renderer, error) {
	switch style {
	case StyleInsert:
		return insertRenderer{}, nil
	case StyleUpsert:
		return upsertRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown statement style %q", style)
	}
}

// Render produces the whole file body for plans, in the order given.
func Render(plans []planner.DailyPlan, style Style) (string, error) {
	r, err := NewRenderer(style)
	if err != nil {
		return "", err
	}

	statements := make([]string, 0, len(plans))
	for _, p := range plans {
		stmt, err := r.Statement(p)
		if err != nil {
			return "", fmt.Errorf("failed to render plan for %s: %w", p.DateString(), err)
		}
		statements = append(statements, stmt)
	}
	return strings.Join(statements, r.Separator()), nil
}

// MealsJSON encodes meals as compact JSON without HTML escaping, so
// non-ASCII names and characters such as & stay readable in the SQL file.
func MealsJSON(meals []meal.Template) (string, error) {
	if meals == nil {
		meals = []meal.Template{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(meals); err != nil {
		return "", fmt.Errorf("failed to marshal meals: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
