package domain

import "fmt"

type Category string

const (
	CategoryResearch    Category = "research"
	CategoryPatents     Category = "patents"
	CategorySupervision Category = "supervision"
	CategoryConferences Category = "conferences"
	CategoryTraining    Category = "training"
	CategoryTeaching    Category = "teaching"
)

// Categories lists the six achievement categories in display order.
var Categories = []Category{
	CategoryResearch,
	CategoryPatents,
	CategorySupervision,
	CategoryConferences,
	CategoryTraining,
	CategoryTeaching,
}

// ParseCategory resolves a category name. Names outside the fixed six
// return ErrInvalidCategory.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

type Position string

const (
	PositionTeachingAssistant  Position = "teaching_assistant"
	PositionLecturer           Position = "lecturer"
	PositionAssistantProfessor Position = "assistant_professor"
	PositionAssociateProfessor Position = "associate_professor"
)

// Positions lists the ranks a profile can hold, lowest first.
var Positions = []Position{
	PositionTeachingAssistant,
	PositionLecturer,
	PositionAssistantProfessor,
}

// ParsePosition resolves a position that has a configured requirement tier.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if _, ok := promotionRequirements[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return p, nil
}

type Quartile string

const (
	QuartileQ1    Quartile = "Q1"
	QuartileQ2    Quartile = "Q2"
	QuartileQ3    Quartile = "Q3"
	QuartileQ4    Quartile = "Q4"
	QuartileLocal Quartile = "local"
)

type PatentStatus string

const (
	PatentGranted PatentStatus = "granted"
	PatentPending PatentStatus = "pending"
)

type SupervisionType string

const (
	SupervisionPhD        SupervisionType = "phd"
	SupervisionMasters    SupervisionType = "masters"
	SupervisionGraduation SupervisionType = "graduation"
)

type ConferenceType string

const (
	ConferenceInternational ConferenceType = "international"
	ConferenceLocal         ConferenceType = "local"
)

type ConferenceRole string

const (
	RolePresenter ConferenceRole = "presenter"
	RoleAttendee  ConferenceRole = "attendee"
	RoleKeynote   ConferenceRole = "keynote"
	RoleOrganizer ConferenceRole = "organizer"
)

type TeachingType string

const (
	TeachingCourseDevelopment TeachingType = "course_development"
	TeachingLectures          TeachingType = "lectures"
	TeachingAssessment        TeachingType = "assessment"
)

type ApplicationStatus string

const (
	ApplicationNotApplied ApplicationStatus = "not_applied"
	ApplicationPending    ApplicationStatus = "pending"
)
