package fixture

import (
	"fmt"
	"strings"

	"meal-plan-seeder/internal/planner"

	"github.com/lib/pq"
)

const (
	schemaName = "public"
	tableName  = "meal_plans"
)

var insertColumns = []string{
	"id", "user_id", "date", "recovery_phase", "meals", "preferences", "created_at", "updated_at",
}

type insertRenderer struct{}

func (insertRenderer) Separator() string { return "\n" }

func (insertRenderer) Statement(p planner.DailyPlan) (string, error) {
	meals, err := MealsJSON(p.Meals)
	if err != nil {
		return "", err
	}

	columns := make([]string, len(insertColumns))
	for i, c := range insertColumns {
		columns[i] = pq.QuoteIdentifier(c)
	}

	preferences := "null"
	if len(p.Preferences) > 0 {
		preferences = pq.QuoteLiteral(string(p.Preferences))
	}

	values := []string{
		pq.QuoteLiteral(p.ID),
		pq.QuoteLiteral(p.UserID),
		pq.QuoteLiteral(p.DateString()),
		pq.QuoteLiteral(string(p.RecoveryPhase)),
		pq.QuoteLiteral(meals),
		preferences,
		pq.QuoteLiteral(p.CreatedAt.UTC().Format(TimestampLayout)),
		pq.QuoteLiteral(p.UpdatedAt.UTC().Format(TimestampLayout)),
	}

	return fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES (%s);",
		pq.QuoteIdentifier(schemaName),
		pq.QuoteIdentifier(tableName),
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
	), nil
}

type upsertRenderer struct{}

func (upsertRenderer) Separator() string { return "\n\n" }

func (upsertRenderer) Statement(p planner.DailyPlan) (string, error) {
	meals, err := MealsJSON(p.Meals)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"INSERT INTO %s (user_id, date, recovery_phase, meals)\n"+
			"VALUES (%s, %s, %s, %s)\n"+
			"ON CONFLICT (user_id, date) DO UPDATE SET recovery_phase = EXCLUDED.recovery_phase, meals = EXCLUDED.meals;",
		tableName,
		pq.QuoteLiteral(p.UserID),
		pq.QuoteLiteral(p.DateString()),
		pq.QuoteLiteral(string(p.RecoveryPhase)),
		pq.QuoteLiteral(meals),
	), nil
}
