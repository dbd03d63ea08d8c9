package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// FacultyRecord is the stored form of the faculty row. Points and the
// eligible flag are not stored; they are recomputed on load.
type FacultyRecord struct {
	Profile           domain.Profile
	WizardCompleted   bool
	ApplicationStatus domain.ApplicationStatus
	ApplicationDate   *time.Time
	UpdatedAt         time.Time
}

type FacultyRepo interface {
	Get(ctx context.Context) (*FacultyRecord, error)
	Save(ctx context.Context, r *FacultyRecord) error
}

type AchievementRepo interface {
	Create(ctx context.Context, a *domain.Achievement) error
	GetByID(ctx context.Context, id string) (*domain.Achievement, error)
	List(ctx context.Context) ([]*domain.Achievement, error)
	ListByCategory(ctx context.Context, c domain.Category) ([]*domain.Achievement, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
