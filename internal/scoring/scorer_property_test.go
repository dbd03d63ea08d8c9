package scoring

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	quartiles = []domain.Quartile{"Q1", "Q2", "Q3", "Q4", "local", "Q7", ""}
	statuses  = []domain.PatentStatus{"granted", "pending", "lapsed"}
	supTypes  = []domain.SupervisionType{"phd", "masters", "graduation", "postdoc"}
	confTypes = []domain.ConferenceType{"international", "local", "regional"}
	roles     = []domain.ConferenceRole{"presenter", "attendee", "keynote", "organizer", "panelist"}
	teachings = []domain.TeachingType{"course_development", "lectures", "assessment", "curriculum"}
)

func randomDetails(rng *rand.Rand) domain.Details {
	switch rng.Intn(6) {
	case 0:
		return domain.Research{Title: "r", Quartile: quartiles[rng.Intn(len(quartiles))]}
	case 1:
		return domain.Patent{Title: "p", Status: statuses[rng.Intn(len(statuses))]}
	case 2:
		return domain.Supervision{StudentName: "s", Type: supTypes[rng.Intn(len(supTypes))]}
	case 3:
		return domain.Conference{
			Title: "c",
			Type:  confTypes[rng.Intn(len(confTypes))],
			Role:  roles[rng.Intn(len(roles))],
		}
	case 4:
		return domain.Training{Title: "t", Certified: rng.Intn(2) == 1}
	default:
		return domain.Teaching{Title: "te", Type: teachings[rng.Intn(len(teachings))]}
	}
}

func randomSet(rng *rand.Rand) domain.AchievementSet {
	s := domain.NewAchievementSet()
	n := rng.Intn(25)
	for i := 0; i < n; i++ {
		s.Add(&domain.Achievement{ID: string(rune('A' + i)), Details: randomDetails(rng)})
	}
	return s
}

// TestComputePoints_Invariants property-tests total == sum(breakdown),
// non-negative subtotals, and per-category sums over random sets.
func TestComputePoints_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		set := randomSet(rng)
		result := ComputePoints(set)

		sum := 0
		for _, c := range domain.Categories {
			v, ok := result.Breakdown[c]
			assert.True(t, ok, "trial %d: category %s missing from breakdown", trial, c)
			assert.GreaterOrEqual(t, v, 0, "trial %d: category %s negative", trial, c)
			sum += v

			expected := 0
			for _, a := range set[c] {
				expected += ScoreRecord(a.Details)
			}
			assert.Equal(t, expected, v, "trial %d: category %s subtotal", trial, c)
		}
		assert.Equal(t, sum, result.Total, "trial %d: total must equal breakdown sum", trial)
	}
}

// TestComputePoints_OrderIndependent shuffles records within each category
// and checks the result does not change.
func TestComputePoints_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		set := randomSet(rng)
		before := ComputePoints(set)

		shuffled := set.Clone()
		for _, c := range domain.Categories {
			items := shuffled[c]
			rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		}
		after := ComputePoints(shuffled)

		assert.Equal(t, before, after, "trial %d: shuffling changed the result", trial)
	}
}

// TestSimulate_GainMatchesAdditions checks the simulated gain equals the
// score of the additions alone.
func TestSimulate_GainMatchesAdditions(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		current := randomSet(rng)
		additions := randomSet(rng)

		sim := Simulate(current, additions)

		assert.Equal(t, ComputePoints(additions).Total, sim.PointsGained, "trial %d", trial)
		assert.Equal(t, sim.CurrentPoints+sim.PointsGained, sim.SimulatedPoints, "trial %d", trial)
	}
}
