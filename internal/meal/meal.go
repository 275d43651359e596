package meal

// Phase is the coarse dietary stage a meal is suitable for.
type Phase string

const (
	PhaseLiquid  Phase = "liquid"
	PhaseSoft    Phase = "soft"
	PhaseRegular Phase = "regular"
)

// Phases lists every phase in recovery order.
var Phases = []Phase{PhaseLiquid, PhaseSoft, PhaseRegular}

// Time is the time of day a meal is served.
type Time string

const (
	Breakfast Time = "breakfast"
	Lunch     Time = "lunch"
	Dinner    Time = "dinner"
	Snack     Time = "snack"
)

// Nutrition holds the macro figures for one portion.
type Nutrition struct {
	Calories float64  `json:"calories" validate:"gte=0"`
	Protein  float64  `json:"protein" validate:"gte=0"`
	Carbs    float64  `json:"carbs" validate:"gte=0"`
	Fat      float64  `json:"fat" validate:"gte=0"`
	Fiber    *float64 `json:"fiber,omitempty" validate:"omitempty,gte=0"`
}

// Template is a reusable description of one meal.
//
// SuitableFor is a pointer so that an explicitly empty list still serializes as [].
type Template struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Tags         []string  `json:"tags,omitempty"`
	Phase        Phase     `json:"phase" validate:"oneof=liquid soft regular"`
	MealTime     Time      `json:"mealTime" validate:"oneof=breakfast lunch dinner snack"`
	Nutrition    Nutrition `json:"nutrition"`
	Ingredients  []string  `json:"ingredients" validate:"min=1,dive,required"`
	Instructions []string  `json:"instructions" validate:"min=1,dive,required"`
	PrepTime     int       `json:"prepTime" validate:"gte=0"`
	PortionSize  string    `json:"portionSize" validate:"required"`
	SuitableFor  *[]string `json:"suitableFor,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// Clone returns a deep copy so callers never share slices with a catalog.
func (t Template) Clone() Template {
	c := t
	c.Tags = cloneStrings(t.Tags)
	c.Ingredients = cloneStrings(t.Ingredients)
	c.Instructions = cloneStrings(t.Instructions)
	if t.SuitableFor != nil {
		s := cloneStrings(*t.SuitableFor)
		if s == nil {
			s = []string{}
		}
		c.SuitableFor = &s
	}
	if t.Nutrition.Fiber != nil {
		f := *t.Nutrition.Fiber
		c.Nutrition.Fiber = &f
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
