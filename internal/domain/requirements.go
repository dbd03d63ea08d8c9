package domain

// PromotionRequirement is the points tier for one position. MaxPoints only
// scales progress displays; eligibility is gated by MinPoints alone.
type PromotionRequirement struct {
	MinPoints    int
	MaxPoints    int
	NextPosition Position
}

var promotionRequirements = map[Position]PromotionRequirement{
	PositionTeachingAssistant:  {MinPoints: 46, MaxPoints: 70, NextPosition: PositionLecturer},
	PositionLecturer:           {MinPoints: 50, MaxPoints: 80, NextPosition: PositionAssistantProfessor},
	PositionAssistantProfessor: {MinPoints: 60, MaxPoints: 100, NextPosition: PositionAssociateProfessor},
}

// RequirementFor looks up the tier for p. The zero requirement and false
// are returned for positions without a tier.
func RequirementFor(p Position) (PromotionRequirement, bool) {
	req, ok := promotionRequirements[p]
	return req, ok
}

// PromotionRequirements returns a copy of the requirement table.
func PromotionRequirements() map[Position]PromotionRequirement {
	out := make(map[Position]PromotionRequirement, len(promotionRequirements))
	for k, v := range promotionRequirements {
		out[k] = v
	}
	return out
}
