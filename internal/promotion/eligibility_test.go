package promotion

import (
	"testing"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateEligibility_AtThreshold(t *testing.T) {
	e := EvaluateEligibility(domain.PositionTeachingAssistant, 46)

	assert.True(t, e.Eligible)
	assert.Equal(t, 0, e.PointsNeeded)
	assert.Equal(t, domain.PositionLecturer, e.Requirement.NextPosition)
	assert.True(t, e.Configured)
}

func TestEvaluateEligibility_OneBelowThreshold(t *testing.T) {
	e := EvaluateEligibility(domain.PositionTeachingAssistant, 45)

	assert.False(t, e.Eligible)
	assert.Equal(t, 1, e.PointsNeeded)
}

func TestEvaluateEligibility_Tiers(t *testing.T) {
	tests := []struct {
		position domain.Position
		total    int
		eligible bool
		needed   int
		next     domain.Position
	}{
		{domain.PositionTeachingAssistant, 0, false, 46, domain.PositionLecturer},
		{domain.PositionTeachingAssistant, 90, true, 0, domain.PositionLecturer},
		{domain.PositionLecturer, 49, false, 1, domain.PositionAssistantProfessor},
		{domain.PositionLecturer, 50, true, 0, domain.PositionAssistantProfessor},
		{domain.PositionAssistantProfessor, 30, false, 30, domain.PositionAssociateProfessor},
		{domain.PositionAssistantProfessor, 60, true, 0, domain.PositionAssociateProfessor},
	}
	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			e := EvaluateEligibility(tt.position, tt.total)
			assert.Equal(t, tt.eligible, e.Eligible)
			assert.Equal(t, tt.needed, e.PointsNeeded)
			assert.Equal(t, tt.next, e.Requirement.NextPosition)
		})
	}
}

func TestEvaluateEligibility_UnknownPositionDegrades(t *testing.T) {
	e := EvaluateEligibility(domain.Position("dean"), 0)

	assert.False(t, e.Configured)
	assert.True(t, e.Eligible)
	assert.Equal(t, 0, e.PointsNeeded)
	assert.Equal(t, domain.PromotionRequirement{}, e.Requirement)
	assert.Equal(t, 0.0, e.Progress())
}

func TestEligibility_Progress(t *testing.T) {
	assert.InDelta(t, 0.5, EvaluateEligibility(domain.PositionTeachingAssistant, 35).Progress(), 1e-9)
	assert.Equal(t, 1.0, EvaluateEligibility(domain.PositionTeachingAssistant, 500).Progress())
	assert.Equal(t, 0.0, EvaluateEligibility(domain.PositionLecturer, 0).Progress())
}

func TestEligibility_ThresholdProgress(t *testing.T) {
	assert.InDelta(t, 0.5, EvaluateEligibility(domain.PositionLecturer, 25).ThresholdProgress(), 1e-9)
	assert.Equal(t, 1.0, EvaluateEligibility(domain.PositionLecturer, 80).ThresholdProgress())
	assert.Equal(t, 1.0, EvaluateEligibility(domain.Position(""), 0).ThresholdProgress())
}

func TestEvaluateEligibility_NeededNeverNegative(t *testing.T) {
	for _, p := range domain.Positions {
		for total := 0; total <= 150; total++ {
			e := EvaluateEligibility(p, total)
			assert.GreaterOrEqual(t, e.PointsNeeded, 0)
			assert.Equal(t, total >= e.Requirement.MinPoints, e.Eligible, "position=%s total=%d", p, total)
		}
	}
}
