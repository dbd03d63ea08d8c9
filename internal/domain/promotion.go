package domain

import "time"

// PromotionStatus tracks the application lifecycle. Eligible is derived and
// recomputed after every points change; Status only moves forward through
// Apply and back only through a full reset.
type PromotionStatus struct {
	Eligible        bool
	ApplicationDate *time.Time
	Status          ApplicationStatus
}

func NewPromotionStatus() PromotionStatus {
	return PromotionStatus{Status: ApplicationNotApplied}
}

func (p PromotionStatus) IsPending() bool {
	return p.Status == ApplicationPending
}
