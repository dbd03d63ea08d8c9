package importer

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// Profile converts a validated profile import.
func (p ProfileImport) Profile() domain.Profile {
	return domain.Profile{
		Name:            p.Name,
		Degree:          p.Degree,
		CurrentPosition: domain.Position(p.CurrentPosition),
		YearsOfService:  p.YearsOfService,
	}
}

func (r ResearchImport) Details() domain.Details {
	return domain.Research{Title: r.Title, Journal: r.Journal, Quartile: domain.Quartile(r.Quartile)}
}

func (p PatentImport) Details() domain.Details {
	return domain.Patent{Title: p.Title, Number: p.Number, Status: domain.PatentStatus(p.Status)}
}

func (s SupervisionImport) Details() domain.Details {
	return domain.Supervision{StudentName: s.StudentName, ProjectTitle: s.ProjectTitle, Type: domain.SupervisionType(s.Type)}
}

func (c ConferenceImport) Details() domain.Details {
	return domain.Conference{Title: c.Title, Type: domain.ConferenceType(c.Type), Role: domain.ConferenceRole(c.Role)}
}

func (t TrainingImport) Details() domain.Details {
	return domain.Training{Title: t.Title, Provider: t.Provider, Certified: t.Certified}
}

func (t TeachingImport) Details() domain.Details {
	return domain.Teaching{Title: t.Title, Type: domain.TeachingType(t.Type)}
}

// Set converts a validated import into an achievement set. IDs and
// timestamps are left for the service to assign.
func (a AchievementsImport) Set() domain.AchievementSet {
	set := domain.NewAchievementSet()
	add := func(d domain.Details) {
		set.Add(&domain.Achievement{Details: d})
	}
	for _, r := range a.Research {
		add(r.Details())
	}
	for _, p := range a.Patents {
		add(p.Details())
	}
	for _, s := range a.Supervision {
		add(s.Details())
	}
	for _, c := range a.Conferences {
		add(c.Details())
	}
	for _, t := range a.Training {
		add(t.Details())
	}
	for _, t := range a.Teaching {
		add(t.Details())
	}
	return set
}

// RecordImport is implemented by the six per-category import shapes.
type RecordImport interface {
	Details() domain.Details
}

// NewRecordImport returns an empty import shape for c.
func NewRecordImport(c domain.Category) RecordImport {
	switch c {
	case domain.CategoryResearch:
		return &ResearchImport{}
	case domain.CategoryPatents:
		return &PatentImport{}
	case domain.CategorySupervision:
		return &SupervisionImport{}
	case domain.CategoryConferences:
		return &ConferenceImport{}
	case domain.CategoryTraining:
		return &TrainingImport{}
	default:
		return &TeachingImport{}
	}
}

// DecodeRecord parses a single achievement of the named category from JSON
// and validates its shape.
func DecodeRecord(category string, data []byte) (domain.Details, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	rec := NewRecordImport(c)
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parsing %s record: %w", c, err)
	}
	if err := Validate(rec); err != nil {
		return nil, err
	}
	return rec.Details(), nil
}

// ValidateRecord checks a record built in code, e.g. from CLI flags.
func ValidateRecord(rec RecordImport) (domain.Details, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}
	return rec.Details(), nil
}
