package scoring

import "github.com/alexanderramin/promotrack/internal/domain"

// Simulation compares the current set against the same set with
// hypothetical additions.
type Simulation struct {
	CurrentPoints   int
	SimulatedPoints int
	PointsGained    int
	Breakdown       map[domain.Category]int
}

// Simulate scores current plus additions without modifying either set.
func Simulate(current, additions domain.AchievementSet) Simulation {
	before := ComputePoints(current)
	after := ComputePoints(current.Merge(additions))
	return Simulation{
		CurrentPoints:   before.Total,
		SimulatedPoints: after.Total,
		PointsGained:    after.Total - before.Total,
		Breakdown:       after.Breakdown,
	}
}
