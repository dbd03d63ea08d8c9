package service

import "context"

// recordingObserver keeps every event in memory.
type recordingObserver struct {
	Events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.Events = append(r.Events, event)
}
