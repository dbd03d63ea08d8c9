package promotion

import (
	"fmt"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/scoring"
)

// Faculty is the complete state of one faculty record. Callers own the
// value and pass it between operations; nothing here is shared globally.
type Faculty struct {
	Profile         domain.Profile
	Achievements    domain.AchievementSet
	Points          domain.PointsResult
	WizardCompleted bool
	Promotion       domain.PromotionStatus
}

// Reset returns a freshly initialized record: empty profile, six empty
// categories, zeroed points, no application and the wizard not completed.
func Reset() *Faculty {
	return &Faculty{
		Achievements: domain.NewAchievementSet(),
		Points:       domain.ZeroPoints(),
		Promotion:    domain.NewPromotionStatus(),
	}
}

// Restore rebuilds a record from stored parts and recomputes its points and
// eligibility. The application status is taken as stored.
func Restore(profile domain.Profile, achievements []*domain.Achievement, wizardCompleted bool, status domain.PromotionStatus) *Faculty {
	f := Reset()
	f.Profile = profile
	f.WizardCompleted = wizardCompleted
	f.Promotion = status
	for _, a := range achievements {
		f.Achievements.Add(a)
	}
	f.recompute()
	return f
}

// Eligibility evaluates the record's current total against its position.
func (f *Faculty) Eligibility() Eligibility {
	return f.evaluate(f.Points.Total)
}

// evaluate applies the record-level rule on top of EvaluateEligibility: a
// record is never eligible before onboarding or without a requirement tier.
func (f *Faculty) evaluate(total int) Eligibility {
	e := EvaluateEligibility(f.Profile.CurrentPosition, total)
	if !f.WizardCompleted || !e.Configured {
		e.Eligible = false
	}
	return e
}

func (f *Faculty) recompute() {
	f.Points = scoring.Rescore(f.Achievements)
	f.Promotion.Eligible = f.Eligibility().Eligible
}

// CompleteWizard captures the profile, runs the first scoring pass and
// flips the wizard flag. Either all three take effect or none do.
func (f *Faculty) CompleteWizard(profile domain.Profile, achievements domain.AchievementSet) error {
	if f.WizardCompleted {
		return domain.ErrWizardCompleted
	}

	set := domain.NewAchievementSet()
	for _, a := range achievements.All() {
		cp := *a
		set.Add(&cp)
	}
	points := scoring.Rescore(set)

	f.Profile = profile
	f.Achievements = set
	f.Points = points
	f.WizardCompleted = true
	f.Promotion.Eligible = f.Eligibility().Eligible
	return nil
}

// UpdateProfile replaces the profile and re-evaluates eligibility against
// the (possibly new) position.
func (f *Faculty) UpdateProfile(profile domain.Profile) {
	f.Profile = profile
	f.recompute()
}

// AddAchievement appends a, scores it and recomputes the whole record.
func (f *Faculty) AddAchievement(a *domain.Achievement) error {
	if !f.WizardCompleted {
		return domain.ErrWizardIncomplete
	}
	f.Achievements.Add(a)
	f.recompute()
	return nil
}

// DeleteAchievement removes the achievement with the given ID and
// recomputes the whole record.
func (f *Faculty) DeleteAchievement(id string) (*domain.Achievement, error) {
	if !f.WizardCompleted {
		return nil, domain.ErrWizardIncomplete
	}
	removed, ok := f.Achievements.Remove(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAchievementNotFound, id)
	}
	f.recompute()
	return removed, nil
}

// Apply submits a promotion application. Eligibility is re-evaluated at
// the moment of the attempt.
func (f *Faculty) Apply(now time.Time) error {
	if !f.WizardCompleted {
		return domain.ErrWizardIncomplete
	}
	f.recompute()
	status, err := Apply(f.Promotion, f.Promotion.Eligible, now)
	if err != nil {
		return err
	}
	f.Promotion = status
	return nil
}

// Simulation is a what-if scoring result for the record's position.
type Simulation struct {
	scoring.Simulation
	WouldBeEligible bool
	PointsNeeded    int
}

// Simulate scores the record plus additions without changing the record.
func (f *Faculty) Simulate(additions domain.AchievementSet) Simulation {
	sim := scoring.Simulate(f.Achievements, additions)
	e := f.evaluate(sim.SimulatedPoints)
	return Simulation{
		Simulation:      sim,
		WouldBeEligible: e.Eligible,
		PointsNeeded:    e.PointsNeeded,
	}
}
