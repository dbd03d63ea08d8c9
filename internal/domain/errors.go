package domain

import "errors"

var (
	// ErrInvalidCategory indicates a category name outside the fixed six.
	ErrInvalidCategory = errors.New("invalid achievement category")

	// ErrUnknownPosition indicates a position with no requirement tier.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrIneligibleApplication is returned when applying below the
	// current position's minimum points.
	ErrIneligibleApplication = errors.New("not eligible for promotion")

	// ErrAlreadyPending is returned when applying while an application
	// is already pending.
	ErrAlreadyPending = errors.New("promotion application already pending")

	// ErrWizardIncomplete is returned for record mutations attempted
	// before onboarding has finished.
	ErrWizardIncomplete = errors.New("onboarding wizard not completed")

	// ErrWizardCompleted is returned when the wizard is submitted a second
	// time without a reset in between.
	ErrWizardCompleted = errors.New("onboarding wizard already completed")

	// ErrAchievementNotFound indicates no achievement has the given ID.
	ErrAchievementNotFound = errors.New("achievement not found")
)
