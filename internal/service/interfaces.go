package service

import (
	"context"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
)

// FacultyService exposes the use cases over the single stored faculty
// record. Every returned Faculty has freshly recomputed points.
type FacultyService interface {
	Get(ctx context.Context) (*promotion.Faculty, error)
	CompleteWizard(ctx context.Context, profile domain.Profile, achievements domain.AchievementSet) (*promotion.Faculty, error)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*promotion.Faculty, error)
	GetAchievement(ctx context.Context, id string) (*domain.Achievement, error)
	ListAchievements(ctx context.Context, category domain.Category) ([]*domain.Achievement, error)
	AddAchievement(ctx context.Context, details domain.Details) (*AchievementResult, error)
	DeleteAchievement(ctx context.Context, id string) (*AchievementResult, error)
	Eligibility(ctx context.Context) (promotion.Eligibility, error)
	Apply(ctx context.Context) (*promotion.Faculty, error)
	Reset(ctx context.Context) (*promotion.Faculty, error)
	Simulate(ctx context.Context, additions domain.AchievementSet) (promotion.Simulation, error)
}

// AchievementResult is the outcome of adding or removing one achievement.
type AchievementResult struct {
	Achievement *domain.Achievement
	Faculty     *promotion.Faculty
}
