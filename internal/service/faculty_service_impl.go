package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/promotrack/internal/db"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
	"github.com/alexanderramin/promotrack/internal/repository"
	"github.com/alexanderramin/promotrack/internal/scoring"
	"github.com/google/uuid"
)

type facultyService struct {
	faculty      repository.FacultyRepo
	achievements repository.AchievementRepo
	uow          db.UnitOfWork
	observer     UseCaseObserver
	now          func() time.Time
}

func NewFacultyService(
	faculty repository.FacultyRepo,
	achievements repository.AchievementRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) FacultyService {
	return &facultyService{
		faculty:      faculty,
		achievements: achievements,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *facultyService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// loadFaculty rebuilds the record from storage and rescores it.
func loadFaculty(ctx context.Context, faculty repository.FacultyRepo, achievements repository.AchievementRepo) (*promotion.Faculty, error) {
	rec, err := faculty.Get(ctx)
	if err != nil {
		return nil, err
	}
	items, err := achievements.List(ctx)
	if err != nil {
		return nil, err
	}
	status := domain.PromotionStatus{
		Status:          rec.ApplicationStatus,
		ApplicationDate: rec.ApplicationDate,
	}
	return promotion.Restore(rec.Profile, items, rec.WizardCompleted, status), nil
}

func recordOf(f *promotion.Faculty) *repository.FacultyRecord {
	return &repository.FacultyRecord{
		Profile:           f.Profile,
		WizardCompleted:   f.WizardCompleted,
		ApplicationStatus: f.Promotion.Status,
		ApplicationDate:   f.Promotion.ApplicationDate,
	}
}

func (s *facultyService) Get(ctx context.Context) (*promotion.Faculty, error) {
	return loadFaculty(ctx, s.faculty, s.achievements)
}

func (s *facultyService) CompleteWizard(ctx context.Context, profile domain.Profile, achievements domain.AchievementSet) (f *promotion.Faculty, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"position":     string(profile.CurrentPosition),
		"achievements": achievements.Len(),
	}
	defer func() { s.observe(ctx, "complete-wizard", startedAt, fields, err) }()

	now := s.now()
	set := domain.NewAchievementSet()
	for _, a := range achievements.All() {
		cp := *a
		if cp.ID == "" {
			cp.ID = uuid.New().String()
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		set.Add(&cp)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFaculty := repository.NewSQLiteFacultyRepo(tx)
		txAchievements := repository.NewSQLiteAchievementRepo(tx)

		loaded, err := loadFaculty(ctx, txFaculty, txAchievements)
		if err != nil {
			return err
		}
		if err := loaded.CompleteWizard(profile, set); err != nil {
			return err
		}

		if err := txAchievements.DeleteAll(ctx); err != nil {
			return err
		}
		for _, a := range loaded.Achievements.All() {
			if err := txAchievements.Create(ctx, a); err != nil {
				return err
			}
		}
		if err := txFaculty.Save(ctx, recordOf(loaded)); err != nil {
			return err
		}
		f = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["total"] = f.Points.Total
	return f, nil
}

func (s *facultyService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (f *promotion.Faculty, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "update-profile", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFaculty := repository.NewSQLiteFacultyRepo(tx)
		loaded, err := loadFaculty(ctx, txFaculty, repository.NewSQLiteAchievementRepo(tx))
		if err != nil {
			return err
		}
		loaded.UpdateProfile(patch.Apply(loaded.Profile))
		if err := txFaculty.Save(ctx, recordOf(loaded)); err != nil {
			return err
		}
		f = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["position"] = string(f.Profile.CurrentPosition)
	fields["eligible"] = f.Promotion.Eligible
	return f, nil
}

// GetAchievement loads one record with its points freshly scored.
func (s *facultyService) GetAchievement(ctx context.Context, id string) (*domain.Achievement, error) {
	a, err := s.achievements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAchievementNotFound, id)
		}
		return nil, err
	}
	a.Points = scoring.ScoreRecord(a.Details)
	return a, nil
}

// ListAchievements returns the records of one category, or all of them when
// category is empty, in insertion order.
func (s *facultyService) ListAchievements(ctx context.Context, category domain.Category) ([]*domain.Achievement, error) {
	var (
		items []*domain.Achievement
		err   error
	)
	if category == "" {
		items, err = s.achievements.List(ctx)
	} else {
		items, err = s.achievements.ListByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}
	for _, a := range items {
		a.Points = scoring.ScoreRecord(a.Details)
	}
	return items, nil
}

func (s *facultyService) AddAchievement(ctx context.Context, details domain.Details) (res *AchievementResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": string(details.Category())}
	defer func() { s.observe(ctx, "add-achievement", startedAt, fields, err) }()

	a := &domain.Achievement{
		ID:        uuid.New().String(),
		Details:   details,
		CreatedAt: s.now(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAchievements := repository.NewSQLiteAchievementRepo(tx)
		loaded, err := loadFaculty(ctx, repository.NewSQLiteFacultyRepo(tx), txAchievements)
		if err != nil {
			return err
		}
		if err := loaded.AddAchievement(a); err != nil {
			return err
		}
		if err := txAchievements.Create(ctx, a); err != nil {
			return err
		}
		res = &AchievementResult{Achievement: a, Faculty: loaded}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["points"] = a.Points
	fields["total"] = res.Faculty.Points.Total
	return res, nil
}

func (s *facultyService) DeleteAchievement(ctx context.Context, id string) (res *AchievementResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"id": id}
	defer func() { s.observe(ctx, "delete-achievement", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAchievements := repository.NewSQLiteAchievementRepo(tx)
		loaded, err := loadFaculty(ctx, repository.NewSQLiteFacultyRepo(tx), txAchievements)
		if err != nil {
			return err
		}
		removed, err := loaded.DeleteAchievement(id)
		if err != nil {
			return err
		}
		if err := txAchievements.Delete(ctx, id); err != nil {
			return err
		}
		res = &AchievementResult{Achievement: removed, Faculty: loaded}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["total"] = res.Faculty.Points.Total
	return res, nil
}

func (s *facultyService) Eligibility(ctx context.Context) (promotion.Eligibility, error) {
	f, err := s.Get(ctx)
	if err != nil {
		return promotion.Eligibility{}, err
	}
	return f.Eligibility(), nil
}

func (s *facultyService) Apply(ctx context.Context) (f *promotion.Faculty, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "apply", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFaculty := repository.NewSQLiteFacultyRepo(tx)
		loaded, err := loadFaculty(ctx, txFaculty, repository.NewSQLiteAchievementRepo(tx))
		if err != nil {
			return err
		}
		fields["total"] = loaded.Points.Total
		if err := loaded.Apply(s.now()); err != nil {
			return err
		}
		if err := txFaculty.Save(ctx, recordOf(loaded)); err != nil {
			return err
		}
		f = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *facultyService) Reset(ctx context.Context) (f *promotion.Faculty, err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "reset", startedAt, nil, err) }()

	fresh := promotion.Reset()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteAchievementRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return repository.NewSQLiteFacultyRepo(tx).Save(ctx, recordOf(fresh))
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *facultyService) Simulate(ctx context.Context, additions domain.AchievementSet) (promotion.Simulation, error) {
	f, err := s.Get(ctx)
	if err != nil {
		return promotion.Simulation{}, err
	}
	return f.Simulate(additions), nil
}
