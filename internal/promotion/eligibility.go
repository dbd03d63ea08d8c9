package promotion

import "github.com/alexanderramin/promotrack/internal/domain"

// Eligibility is the verdict for a position at a given points total.
type Eligibility struct {
	Position      domain.Position
	CurrentPoints int
	Eligible      bool
	PointsNeeded  int
	Requirement   domain.PromotionRequirement

	// Configured is false when the position has no requirement tier. The
	// requirement is then treated as all zeros rather than failing.
	Configured bool
}

// EvaluateEligibility compares total against the position's minimum.
// The boundary is inclusive: total == MinPoints is eligible.
func EvaluateEligibility(position domain.Position, total int) Eligibility {
	req, ok := domain.RequirementFor(position)
	needed := req.MinPoints - total
	if needed < 0 {
		needed = 0
	}
	return Eligibility{
		Position:      position,
		CurrentPoints: total,
		Eligible:      total >= req.MinPoints,
		PointsNeeded:  needed,
		Requirement:   req,
		Configured:    ok,
	}
}

// Progress returns CurrentPoints as a fraction of MaxPoints, clamped to
// [0, 1]. Unconfigured tiers report zero.
func (e Eligibility) Progress() float64 {
	if e.Requirement.MaxPoints <= 0 {
		return 0
	}
	pct := float64(e.CurrentPoints) / float64(e.Requirement.MaxPoints)
	switch {
	case pct < 0:
		return 0
	case pct > 1:
		return 1
	}
	return pct
}

// ThresholdProgress returns CurrentPoints as a fraction of MinPoints,
// clamped to [0, 1].
func (e Eligibility) ThresholdProgress() float64 {
	if e.Requirement.MinPoints <= 0 {
		return 1
	}
	pct := float64(e.CurrentPoints) / float64(e.Requirement.MinPoints)
	if pct > 1 {
		return 1
	}
	if pct < 0 {
		return 0
	}
	return pct
}
