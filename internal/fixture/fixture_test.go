package fixture

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"meal-plan-seeder/internal/meal"
	"meal-plan-seeder/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "85d6d6b1-5af0-4b6d-ba2c-66125102a808"
	mealOneJSON = `[{"id":"meal-1","name":"미음","phase":"liquid","mealTime":"breakfast",` +
		`"nutrition":{"calories":150,"protein":5,"carbs":30,"fat":2},` +
		`"ingredients":["식재료 1","식재료 2"],"instructions":["조리 단계 1","조리 단계 2"],` +
		`"prepTime":15,"portionSize":"1인분"}]`
)

func testPlan(meals ...meal.Template) planner.DailyPlan {
	date := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	stamp := date.Add(9 * time.Hour)
	return planner.DailyPlan{
		ID:            "0b9f7a4e-3c1d-4f7e-9a52-6d3b2f1e8c77",
		UserID:        testUserID,
		Date:          date,
		RecoveryPhase: meal.PhaseLiquid,
		Meals:         meals,
		CreatedAt:     stamp,
		UpdatedAt:     stamp,
	}
}

// mealsLiteral pulls the JSON array literal back out of a rendered statement.
func mealsLiteral(t *testing.T, stmt string) string {
	t.Helper()
	start := strings.Index(stmt, "'[")
	end := strings.LastIndex(stmt, "]'")
	require.True(t, start >= 0 && end > start, "no meals literal in %q", stmt)
	return strings.ReplaceAll(stmt[start+1:end+1], "''", "'")
}

func TestInsertStatement(t *testing.T) {
	r, err := NewRenderer(StyleInsert)
	require.NoError(t, err)

	stmt, err := r.Statement(testPlan(meal.SampleCatalog()[meal.PhaseLiquid][0]))
	require.NoError(t, err)

	want := `INSERT INTO "public"."meal_plans" ("id", "user_id", "date", "recovery_phase", "meals", "preferences", "created_at", "updated_at") VALUES (` +
		`'0b9f7a4e-3c1d-4f7e-9a52-6d3b2f1e8c77', '` + testUserID + `', '2026-01-03', 'liquid', '` + mealOneJSON + `', null, ` +
		`'2026-01-03T09:00:00+00', '2026-01-03T09:00:00+00');`
	assert.Equal(t, want, stmt)
	assert.Equal(t, "\n", r.Separator())
}

func TestUpsertStatement(t *testing.T) {
	r, err := NewRenderer(StyleUpsert)
	require.NoError(t, err)

	stmt, err := r.Statement(testPlan(meal.SampleCatalog()[meal.PhaseLiquid][0]))
	require.NoError(t, err)

	want := "INSERT INTO meal_plans (user_id, date, recovery_phase, meals)\n" +
		"VALUES ('" + testUserID + "', '2026-01-03', 'liquid', '" + mealOneJSON + "')\n" +
		"ON CONFLICT (user_id, date) DO UPDATE SET recovery_phase = EXCLUDED.recovery_phase, meals = EXCLUDED.meals;"
	assert.Equal(t, want, stmt)
	assert.Equal(t, "\n\n", r.Separator())
}

func TestUnknownStyle(t *testing.T) {
	_, err := NewRenderer(Style("merge"))
	assert.EqualError(t, err, `unknown statement style "merge"`)

	_, err = Render(nil, Style("merge"))
	assert.Error(t, err)
}

func TestLiteralQuoting(t *testing.T) {
	t.Run("SingleQuotesDoubled", func(t *testing.T) {
		m := meal.SampleCatalog()[meal.PhaseSoft][0]
		m.Name = "O'Brien's 흰죽"
		stmt, err := insertRenderer{}.Statement(testPlan(m))
		require.NoError(t, err)
		assert.Contains(t, stmt, "O''Brien''s 흰죽")

		var decoded []meal.Template
		require.NoError(t, json.Unmarshal([]byte(mealsLiteral(t, stmt)), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, m, decoded[0])
	})

	t.Run("HTMLCharactersKept", func(t *testing.T) {
		m := meal.SampleCatalog()[meal.PhaseSoft][1]
		m.Name = "Rice & <beans>"
		stmt, err := upsertRenderer{}.Statement(testPlan(m))
		require.NoError(t, err)
		assert.Contains(t, stmt, `"name":"Rice & <beans>"`)
	})

	t.Run("BackslashUsesEscapeString", func(t *testing.T) {
		m := meal.SampleCatalog()[meal.PhaseSoft][2]
		m.Name = `"따옴표" 죽`
		stmt, err := upsertRenderer{}.Statement(testPlan(m))
		require.NoError(t, err)
		assert.Contains(t, stmt, ` E'[{`)
		assert.Contains(t, stmt, `\\"따옴표\\" 죽`)
	})

	t.Run("PreferencesWhenSet", func(t *testing.T) {
		p := testPlan(meal.SampleCatalog()[meal.PhaseSoft][0])
		p.Preferences = json.RawMessage(`{"spicy":false}`)
		stmt, err := insertRenderer{}.Statement(p)
		require.NoError(t, err)
		assert.Contains(t, stmt, `'{"spicy":false}', '2026-01-03T09:00:00+00'`)
	})
}

func TestRender(t *testing.T) {
	catalog := meal.SampleCatalog()
	g := planner.NewGenerator(testUserID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		meal.Brackets{LiquidUntil: 7, SoftUntil: 30}, catalog)
	plans := g.Generate(time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	t.Run("UpsertBlankLineSeparated", func(t *testing.T) {
		body, err := Render(plans, StyleUpsert)
		require.NoError(t, err)

		statements := strings.Split(body, "\n\n")
		require.Len(t, statements, len(plans))
		assert.False(t, strings.HasSuffix(body, "\n"))
		for i, stmt := range statements {
			assert.Contains(t, stmt, "'"+plans[i].DateString()+"'")
			assert.Contains(t, stmt, "'"+string(plans[i].RecoveryPhase)+"'")

			var decoded []meal.Template
			require.NoError(t, json.Unmarshal([]byte(mealsLiteral(t, stmt)), &decoded))
			assert.Equal(t, catalog[plans[i].RecoveryPhase], decoded)
		}
	})

	t.Run("InsertOnePerLine", func(t *testing.T) {
		body, err := Render(plans, StyleInsert)
		require.NoError(t, err)
		lines := strings.Split(body, "\n")
		require.Len(t, lines, len(plans))
		assert.True(t, strings.HasPrefix(lines[0], `INSERT INTO "public"."meal_plans"`))
		assert.Contains(t, lines[0], "'2025-12-30'")
		assert.Contains(t, lines[len(lines)-1], "'2026-03-01'")
	})

	t.Run("NoPlans", func(t *testing.T) {
		body, err := Render([]planner.DailyPlan{}, StyleInsert)
		require.NoError(t, err)
		assert.Empty(t, body)
	})
}

func TestMealsJSON(t *testing.T) {
	out, err := MealsJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = MealsJSON([]meal.Template{meal.SampleCatalog()[meal.PhaseLiquid][0]})
	require.NoError(t, err)
	assert.Equal(t, mealOneJSON, out)
}
