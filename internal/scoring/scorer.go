package scoring

import "github.com/alexanderramin/promotrack/internal/domain"

// BucketRole collapses a conference role into its rate column. Presenter,
// keynote and organizer share the presenter rate; every other value,
// including unrecognized ones, is an attendee.
func BucketRole(role domain.ConferenceRole) RoleBucket {
	switch role {
	case domain.RolePresenter, domain.RoleKeynote, domain.RoleOrganizer:
		return BucketPresenter
	}
	return BucketAttendee
}

// ScoreRecord returns the points for a single achievement payload.
// Unrecognized discriminant values score the category fallback rate.
func ScoreRecord(d domain.Details) int {
	switch d := d.(type) {
	case domain.Research:
		return lookup(researchRates, d.Quartile, FallbackResearch)
	case domain.Patent:
		return lookup(patentRates, d.Status, FallbackPatents)
	case domain.Supervision:
		return lookup(supervisionRates, d.Type, FallbackSupervision)
	case domain.Conference:
		key := ConferenceKey{Type: d.Type, Bucket: BucketRole(d.Role)}
		return lookup(conferenceRates, key, FallbackConferences)
	case domain.Training:
		if d.Certified {
			return trainingCertified
		}
		return trainingUncertified
	case domain.Teaching:
		return lookup(teachingRates, d.Type, FallbackTeaching)
	}
	return 0
}

func lookup[K comparable](table map[K]int, key K, fallback int) int {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// ComputePoints scores every achievement in the set. It does not modify
// the set. Categories with no records appear in the breakdown at zero.
func ComputePoints(set domain.AchievementSet) domain.PointsResult {
	result := domain.ZeroPoints()
	for _, items := range set {
		for _, a := range items {
			p := ScoreRecord(a.Details)
			result.Breakdown[a.Category()] += p
			result.Total += p
		}
	}
	return result
}

// Rescore refreshes the cached Points of every achievement in the set and
// returns the full result.
func Rescore(set domain.AchievementSet) domain.PointsResult {
	for _, items := range set {
		for _, a := range items {
			a.Points = ScoreRecord(a.Details)
		}
	}
	return ComputePoints(set)
}
