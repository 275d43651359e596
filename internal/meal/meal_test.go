package meal

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketsPhaseFor(t *testing.T) {
	t.Run("SevenTwentyOne", func(t *testing.T) {
		b := Brackets{LiquidUntil: 7, SoftUntil: 21}
		cases := map[int]Phase{
			-27: PhaseRegular,
			-1:  PhaseRegular,
			0:   PhaseLiquid,
			7:   PhaseLiquid,
			8:   PhaseSoft,
			21:  PhaseSoft,
			22:  PhaseRegular,
			23:  PhaseRegular,
		}
		for delta, want := range cases {
			assert.Equal(t, want, b.PhaseFor(delta), "delta %d", delta)
		}
	})

	t.Run("SevenThirty", func(t *testing.T) {
		b := Brackets{LiquidUntil: 7, SoftUntil: 30}
		assert.Equal(t, PhaseSoft, b.PhaseFor(22))
		assert.Equal(t, PhaseSoft, b.PhaseFor(30))
		assert.Equal(t, PhaseRegular, b.PhaseFor(31))
	})
}

func TestBracketsValidate(t *testing.T) {
	assert.NoError(t, Brackets{LiquidUntil: 7, SoftUntil: 21}.Validate())
	assert.Error(t, Brackets{LiquidUntil: -1, SoftUntil: 21}.Validate())
	assert.Error(t, Brackets{LiquidUntil: 7, SoftUntil: 7}.Validate())
}

func TestBuiltinCatalogs(t *testing.T) {
	t.Run("Recovery", func(t *testing.T) {
		c := RecoveryCatalog()
		require.NoError(t, c.Validate())
		assert.Len(t, c[PhaseLiquid], 5)
		assert.Len(t, c[PhaseSoft], 4)
		assert.Len(t, c[PhaseRegular], 4)
		assert.Equal(t, 15, c[PhaseLiquid][0].PrepTime)
		assert.Equal(t, 30, c[PhaseSoft][0].PrepTime)
		assert.Equal(t, []string{"일반식", "건강식"}, c[PhaseRegular][0].Tags)
	})

	t.Run("Sample", func(t *testing.T) {
		c := SampleCatalog()
		require.NoError(t, c.Validate())
		for _, p := range Phases {
			assert.Len(t, c[p], 3)
		}
		assert.Equal(t, "meal-9", c[PhaseRegular][2].ID)
	})
}

func TestCatalogValidate(t *testing.T) {
	t.Run("MissingPhase", func(t *testing.T) {
		c := SampleCatalog()
		delete(c, PhaseSoft)
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
	})

	t.Run("TooFewMeals", func(t *testing.T) {
		c := SampleCatalog()
		c[PhaseLiquid] = c[PhaseLiquid][:2]
		assert.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("WrongPhaseTag", func(t *testing.T) {
		c := SampleCatalog()
		c[PhaseLiquid][0].Phase = PhaseSoft
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listed under")
	})

	t.Run("MissingName", func(t *testing.T) {
		c := SampleCatalog()
		c[PhaseSoft][1].Name = ""
		assert.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		c := SampleCatalog()
		c[PhaseRegular][1].ID = c[PhaseRegular][0].ID
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate meal id")
	})
}

func TestMealsForReturnsCopies(t *testing.T) {
	c := RecoveryCatalog()
	meals := c.MealsFor(PhaseSoft)
	meals[0].Ingredients[0] = "changed"
	meals[0].Tags[0] = "changed"
	*meals[0].SuitableFor = append(*meals[0].SuitableFor, "changed")

	assert.Equal(t, "식재료 A", c[PhaseSoft][0].Ingredients[0])
	assert.Equal(t, "영양식", c[PhaseSoft][0].Tags[0])
	assert.Empty(t, *c[PhaseSoft][0].SuitableFor)
	assert.Equal(t, c[PhaseSoft][1], c.MealsFor(PhaseSoft)[1])
}

func TestTemplateJSON(t *testing.T) {
	t.Run("RoundTripKeepsKorean", func(t *testing.T) {
		meals := RecoveryCatalog().MealsFor(PhaseLiquid)
		data, err := json.Marshal(meals)
		require.NoError(t, err)
		assert.Contains(t, string(data), "쌀 미음")

		var decoded []Template
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, meals, decoded)
	})

	t.Run("OptionalFields", func(t *testing.T) {
		recovery, err := json.Marshal(RecoveryCatalog()[PhaseSoft][0])
		require.NoError(t, err)
		assert.Contains(t, string(recovery), `"suitableFor":[]`)
		assert.Contains(t, string(recovery), `"tags":["영양식","회복식"]`)

		sample, err := json.Marshal(SampleCatalog()[PhaseSoft][0])
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(sample), "suitableFor"))
		assert.False(t, strings.Contains(string(sample), "tags"))
		assert.False(t, strings.Contains(string(sample), "fiber"))
	})
}
