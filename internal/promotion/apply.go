package promotion

import (
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// Apply moves status from not_applied to pending. It fails with
// ErrIneligibleApplication when eligible is false and with
// ErrAlreadyPending when an application is already pending; on failure the
// returned status equals the input.
func Apply(status domain.PromotionStatus, eligible bool, now time.Time) (domain.PromotionStatus, error) {
	if status.IsPending() {
		return status, domain.ErrAlreadyPending
	}
	if !eligible {
		return status, domain.ErrIneligibleApplication
	}
	applied := now
	status.Status = domain.ApplicationPending
	status.ApplicationDate = &applied
	status.Eligible = eligible
	return status, nil
}
