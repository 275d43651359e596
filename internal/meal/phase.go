package meal

import "fmt"

// Brackets are the inclusive upper bounds, in days after surgery, of the
// liquid and soft phases. Anything before surgery or past SoftUntil is regular.
type Brackets struct {
	LiquidUntil int
	SoftUntil   int
}

// Validate reports whether the brackets describe a usable schedule.
func (b Brackets) Validate() error {
	if b.LiquidUntil < 0 {
		return fmt.Errorf("liquid phase bound must not be negative, got %d", b.LiquidUntil)
	}
	if b.SoftUntil <= b.LiquidUntil {
		return fmt.Errorf("soft phase bound %d must be greater than liquid bound %d", b.SoftUntil, b.LiquidUntil)
	}
	return nil
}

// PhaseFor classifies a day by its offset from the surgery date.
func (b Brackets) PhaseFor(daysSinceSurgery int) Phase {
	switch {
	case daysSinceSurgery < 0:
		return PhaseRegular
	case daysSinceSurgery <= b.LiquidUntil:
		return PhaseLiquid
	case daysSinceSurgery <= b.SoftUntil:
		return PhaseSoft
	default:
		return PhaseRegular
	}
}

func (b Brackets) String() string {
	return fmt.Sprintf("liquid 0-%d, soft %d-%d", b.LiquidUntil, b.LiquidUntil+1, b.SoftUntil)
}
