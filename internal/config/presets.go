package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"meal-plan-seeder/internal/fixture"
	"meal-plan-seeder/internal/meal"
)

// DefaultUserID owns every generated plan unless MEAL_SEEDER_USER_ID is set.
const DefaultUserID = "85d6d6b1-5af0-4b6d-ba2c-66125102a808"

// DefaultPreset is used when no preset is named.
const DefaultPreset = "recovery"

// ErrUnknownPreset is returned for preset names that are not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset bundles the fixed inputs of one fixture file.
type Preset struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	SurgeryDate time.Time
	Brackets    meal.Brackets
	Style       fixture.Style
	OutputFile  string
	Catalog     func() meal.Catalog
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var presets = map[string]Preset{
	"recovery": {
		Name:        "recovery",
		Description: "Full meal_plans rows around a 2026-01-28 surgery",
		StartDate:   date(2026, time.January, 1),
		EndDate:     date(2026, time.February, 28),
		SurgeryDate: date(2026, time.January, 28),
		Brackets:    meal.Brackets{LiquidUntil: 7, SoftUntil: 21},
		Style:       fixture.StyleInsert,
		OutputFile:  "meal_plans_sample.sql",
		Catalog:     meal.RecoveryCatalog,
	},
	"sample": {
		Name:        "sample",
		Description: "Upserted meal plans around a 2026-01-01 surgery",
		StartDate:   date(2025, time.December, 30),
		EndDate:     date(2026, time.March, 1),
		SurgeryDate: date(2026, time.January, 1),
		Brackets:    meal.Brackets{LiquidUntil: 7, SoftUntil: 30},
		Style:       fixture.StyleUpsert,
		OutputFile:  "sample_data.sql",
		Catalog:     meal.SampleCatalog,
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Presets returns every registered preset sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
