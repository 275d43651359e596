package metrics

import (
	"fmt"
	"strings"

	"meal-plan-seeder/internal/meal"
	"meal-plan-seeder/internal/planner"

	"github.com/dustin/go-humanize"
)

// RunSummary describes one generation run.
type RunSummary struct {
	Plans       int
	PhaseCounts map[meal.Phase]int
	FirstDate   string
	LastDate    string
	Bytes       int
	Size        string
}

// Summarize counts plans per phase and formats the output size.
func Summarize(plans []planner.DailyPlan, bytes int) RunSummary {
	s := RunSummary{
		Plans:       len(plans),
		PhaseCounts: make(map[meal.Phase]int, len(meal.Phases)),
		Bytes:       bytes,
		Size:        humanize.Bytes(uint64(bytes)),
	}
	for _, p := range meal.Phases {
		s.PhaseCounts[p] = 0
	}
	for _, p := range plans {
		s.PhaseCounts[p.RecoveryPhase]++
	}
	if len(plans) > 0 {
		s.FirstDate = plans[0].DateString()
		s.LastDate = plans[len(plans)-1].DateString()
	}
	return s
}

// PhaseBreakdown renders the phase counts in recovery order, e.g. "liquid=8 soft=14 regular=37".
func (s RunSummary) PhaseBreakdown() string {
	parts := make([]string, 0, len(meal.Phases))
	for _, p := range meal.Phases {
		parts = append(parts, fmt.Sprintf("%s=%d", p, s.PhaseCounts[p]))
	}
	return strings.Join(parts, " ")
}
