package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/google/uuid"
)

var fixtureClock atomic.Int64

// fixtureTime hands out strictly increasing creation times so list order is
// stable across fixtures created in the same test.
func fixtureTime() time.Time {
	n := fixtureClock.Add(1)
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Millisecond)
}

type AchievementOption func(*domain.Achievement)

func WithID(id string) AchievementOption {
	return func(a *domain.Achievement) {
		a.ID = id
	}
}

func WithCreatedAt(t time.Time) AchievementOption {
	return func(a *domain.Achievement) {
		a.CreatedAt = t
	}
}

func NewTestAchievement(d domain.Details, opts ...AchievementOption) *domain.Achievement {
	a := &domain.Achievement{
		ID:        uuid.New().String(),
		Details:   d,
		CreatedAt: fixtureTime(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestResearch(q domain.Quartile, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Research{Title: "Paper " + string(q), Journal: "Journal of Tests", Quartile: q}, opts...)
}

func NewTestPatent(s domain.PatentStatus, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Patent{Title: "Patent", Number: "EG-100", Status: s}, opts...)
}

func NewTestSupervision(st domain.SupervisionType, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Supervision{StudentName: "Student", ProjectTitle: "Thesis", Type: st}, opts...)
}

func NewTestConference(ct domain.ConferenceType, role domain.ConferenceRole, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Conference{Title: "Conference", Type: ct, Role: role}, opts...)
}

func NewTestTraining(certified bool, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Training{Title: "Workshop", Provider: "Academy", Certified: certified}, opts...)
}

func NewTestTeaching(tt domain.TeachingType, opts ...AchievementOption) *domain.Achievement {
	return NewTestAchievement(domain.Teaching{Title: "Course", Type: tt}, opts...)
}

// NewTestSet groups the given achievements into a fresh set.
func NewTestSet(items ...*domain.Achievement) domain.AchievementSet {
	set := domain.NewAchievementSet()
	for _, a := range items {
		set.Add(a)
	}
	return set
}

func NewTestProfile(position domain.Position) domain.Profile {
	return domain.Profile{
		Name:            "Dr. Test",
		Degree:          "PhD",
		CurrentPosition: position,
		YearsOfService:  4,
	}
}
