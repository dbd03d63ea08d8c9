package scoring

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// RoleBucket is the conference role after collapsing to a rate column.
type RoleBucket string

const (
	BucketPresenter RoleBucket = "presenter"
	BucketAttendee  RoleBucket = "attendee"
)

// ConferenceKey indexes the conference rate table.
type ConferenceKey struct {
	Type   domain.ConferenceType
	Bucket RoleBucket
}

func (k ConferenceKey) String() string {
	return fmt.Sprintf("%s_%s", k.Type, k.Bucket)
}

// Fallback rates for discriminant values missing from the tables.
const (
	FallbackResearch    = 3
	FallbackPatents     = 10
	FallbackSupervision = 5
	FallbackConferences = 2
	FallbackTeaching    = 3
)

const (
	trainingCertified   = 5
	trainingUncertified = 2
)

var researchRates = map[domain.Quartile]int{
	domain.QuartileQ1:    15,
	domain.QuartileQ2:    12,
	domain.QuartileQ3:    10,
	domain.QuartileQ4:    5,
	domain.QuartileLocal: 3,
}

var patentRates = map[domain.PatentStatus]int{
	domain.PatentGranted: 20,
	domain.PatentPending: 10,
}

var supervisionRates = map[domain.SupervisionType]int{
	domain.SupervisionPhD:        15,
	domain.SupervisionMasters:    10,
	domain.SupervisionGraduation: 5,
}

var conferenceRates = map[ConferenceKey]int{
	{domain.ConferenceInternational, BucketPresenter}: 8,
	{domain.ConferenceInternational, BucketAttendee}:  4,
	{domain.ConferenceLocal, BucketPresenter}:         5,
	{domain.ConferenceLocal, BucketAttendee}:          2,
}

var teachingRates = map[domain.TeachingType]int{
	domain.TeachingCourseDevelopment: 8,
	domain.TeachingLectures:          3,
	domain.TeachingAssessment:        2,
}

// RateRow is one line of the rate table, used for display and export.
type RateRow struct {
	Category domain.Category
	Key      string
	Points   int
}

// RateTable returns the full rate table in display order.
func RateTable() []RateRow {
	var rows []RateRow
	for _, q := range []domain.Quartile{domain.QuartileQ1, domain.QuartileQ2, domain.QuartileQ3, domain.QuartileQ4, domain.QuartileLocal} {
		rows = append(rows, RateRow{domain.CategoryResearch, string(q), researchRates[q]})
	}
	for _, s := range []domain.PatentStatus{domain.PatentGranted, domain.PatentPending} {
		rows = append(rows, RateRow{domain.CategoryPatents, string(s), patentRates[s]})
	}
	for _, s := range []domain.SupervisionType{domain.SupervisionPhD, domain.SupervisionMasters, domain.SupervisionGraduation} {
		rows = append(rows, RateRow{domain.CategorySupervision, string(s), supervisionRates[s]})
	}
	for _, ct := range []domain.ConferenceType{domain.ConferenceInternational, domain.ConferenceLocal} {
		for _, b := range []RoleBucket{BucketPresenter, BucketAttendee} {
			k := ConferenceKey{ct, b}
			rows = append(rows, RateRow{domain.CategoryConferences, k.String(), conferenceRates[k]})
		}
	}
	rows = append(rows,
		RateRow{domain.CategoryTraining, "certified", trainingCertified},
		RateRow{domain.CategoryTraining, "uncertified", trainingUncertified},
	)
	for _, tt := range []domain.TeachingType{domain.TeachingCourseDevelopment, domain.TeachingLectures, domain.TeachingAssessment} {
		rows = append(rows, RateRow{domain.CategoryTeaching, string(tt), teachingRates[tt]})
	}
	return rows
}

// Fallback returns the rate applied when a category's discriminant is not
// in the table. Training has no fallback since its discriminant is a bool.
func Fallback(c domain.Category) (int, bool) {
	switch c {
	case domain.CategoryResearch:
		return FallbackResearch, true
	case domain.CategoryPatents:
		return FallbackPatents, true
	case domain.CategorySupervision:
		return FallbackSupervision, true
	case domain.CategoryConferences:
		return FallbackConferences, true
	case domain.CategoryTeaching:
		return FallbackTeaching, true
	}
	return 0, false
}
