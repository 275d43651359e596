package meal

import (
	"errors"
	"fmt"
	"sort"
)

// SurgeryType names a post-operative diet protocol.
type SurgeryType string

const (
	GastricResection SurgeryType = "gastric_resection"
	ColonResection   SurgeryType = "colon_resection"
	Cholecystectomy  SurgeryType = "cholecystectomy"
	TotalKnee        SurgeryType = "tkr"
	SpinalFusion     SurgeryType = "spinal_fusion"
	GeneralSurgery   SurgeryType = "general"
)

var (
	// ErrUnknownSurgeryType is returned for surgery types without a protocol.
	ErrUnknownSurgeryType = errors.New("unknown surgery type")
	// ErrNoStagedDiet is returned for protocols that start on a regular diet.
	ErrNoStagedDiet = errors.New("surgery type has no liquid or soft phase")
)

// protocolBrackets holds the inclusive liquid and soft day ranges of each
// staged protocol, e.g. gastric resection is liquid 0-3 and soft 4-14.
var protocolBrackets = map[SurgeryType]Brackets{
	GastricResection: {LiquidUntil: 3, SoftUntil: 14},
	ColonResection:   {LiquidUntil: 5, SoftUntil: 21},
	Cholecystectomy:  {LiquidUntil: 1, SoftUntil: 7},
}

// Regular diet from the day of surgery.
var unstaged = map[SurgeryType]bool{
	TotalKnee:      true,
	SpinalFusion:   true,
	GeneralSurgery: true,
}

// ProtocolBrackets returns the phase brackets of a surgery type's diet protocol.
func ProtocolBrackets(t SurgeryType) (Brackets, error) {
	if b, ok := protocolBrackets[t]; ok {
		return b, nil
	}
	if unstaged[t] {
		return Brackets{}, fmt.Errorf("%w: %q", ErrNoStagedDiet, t)
	}
	return Brackets{}, fmt.Errorf("%w: %q", ErrUnknownSurgeryType, t)
}

// StagedSurgeryTypes lists the surgery types ProtocolBrackets accepts, sorted by name.
func StagedSurgeryTypes() []SurgeryType {
	out := make([]SurgeryType, 0, len(protocolBrackets))
	for t := range protocolBrackets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
