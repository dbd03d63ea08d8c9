package httpapi

import (
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
	"github.com/alexanderramin/promotrack/internal/scoring"
)

type ProfileView struct {
	Name            string `json:"name"`
	Degree          string `json:"degree"`
	CurrentPosition string `json:"currentPosition"`
	YearsOfService  int    `json:"yearsOfService"`
}

// AchievementView flattens the tagged union; only the fields of the
// record's own category are set.
type AchievementView struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"createdAt"`
	Title        string    `json:"title,omitempty"`
	Journal      string    `json:"journal,omitempty"`
	Quartile     string    `json:"quartile,omitempty"`
	Number       string    `json:"number,omitempty"`
	Status       string    `json:"status,omitempty"`
	StudentName  string    `json:"studentName,omitempty"`
	ProjectTitle string    `json:"projectTitle,omitempty"`
	Type         string    `json:"type,omitempty"`
	Role         string    `json:"role,omitempty"`
	Provider     string    `json:"provider,omitempty"`
	Certified    *bool     `json:"certified,omitempty"`
}

type PointsView struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

type PromotionStatusView struct {
	Eligible        bool       `json:"eligible"`
	ApplicationDate *time.Time `json:"applicationDate"`
	Status          string     `json:"status"`
}

type FacultyView struct {
	Profile         ProfileView                  `json:"profile"`
	Achievements    map[string][]AchievementView `json:"achievements"`
	Points          PointsView                   `json:"points"`
	WizardCompleted bool                         `json:"wizardCompleted"`
	PromotionStatus PromotionStatusView          `json:"promotionStatus"`
}

type EligibilityView struct {
	Eligible       bool           `json:"eligible"`
	CurrentPoints  int            `json:"currentPoints"`
	RequiredPoints int            `json:"requiredPoints"`
	MaxPoints      int            `json:"maxPoints"`
	PointsNeeded   int            `json:"pointsNeeded"`
	NextPosition   string         `json:"nextPosition"`
	Breakdown      map[string]int `json:"breakdown,omitempty"`
}

type SimulationView struct {
	CurrentPoints   int            `json:"currentPoints"`
	SimulatedPoints int            `json:"simulatedPoints"`
	PointsGained    int            `json:"pointsGained"`
	WouldBeEligible bool           `json:"wouldBeEligible"`
	PointsNeeded    int            `json:"pointsNeeded"`
	Breakdown       map[string]int `json:"breakdown"`
}

type RequirementView struct {
	MinPoints    int    `json:"minPoints"`
	MaxPoints    int    `json:"maxPoints"`
	NextPosition string `json:"nextPosition"`
}

func profileView(p domain.Profile) ProfileView {
	return ProfileView{
		Name:            p.Name,
		Degree:          p.Degree,
		CurrentPosition: string(p.CurrentPosition),
		YearsOfService:  p.YearsOfService,
	}
}

func achievementView(a *domain.Achievement) AchievementView {
	v := AchievementView{
		ID:        a.ID,
		Category:  string(a.Category()),
		Points:    a.Points,
		CreatedAt: a.CreatedAt,
	}
	switch d := a.Details.(type) {
	case domain.Research:
		v.Title, v.Journal, v.Quartile = d.Title, d.Journal, string(d.Quartile)
	case domain.Patent:
		v.Title, v.Number, v.Status = d.Title, d.Number, string(d.Status)
	case domain.Supervision:
		v.StudentName, v.ProjectTitle, v.Type = d.StudentName, d.ProjectTitle, string(d.Type)
	case domain.Conference:
		v.Title, v.Type, v.Role = d.Title, string(d.Type), string(d.Role)
	case domain.Training:
		certified := d.Certified
		v.Title, v.Provider, v.Certified = d.Title, d.Provider, &certified
	case domain.Teaching:
		v.Title, v.Type = d.Title, string(d.Type)
	}
	return v
}

func breakdownView(b map[domain.Category]int) map[string]int {
	out := make(map[string]int, len(b))
	for c, n := range b {
		out[string(c)] = n
	}
	return out
}

func facultyView(f *promotion.Faculty) FacultyView {
	achievements := make(map[string][]AchievementView, len(domain.Categories))
	for _, c := range domain.Categories {
		items := f.Achievements[c]
		views := make([]AchievementView, 0, len(items))
		for _, a := range items {
			views = append(views, achievementView(a))
		}
		achievements[string(c)] = views
	}
	return FacultyView{
		Profile:         profileView(f.Profile),
		Achievements:    achievements,
		Points:          PointsView{Total: f.Points.Total, Breakdown: breakdownView(f.Points.Breakdown)},
		WizardCompleted: f.WizardCompleted,
		PromotionStatus: PromotionStatusView{
			Eligible:        f.Promotion.Eligible,
			ApplicationDate: f.Promotion.ApplicationDate,
			Status:          string(f.Promotion.Status),
		},
	}
}

func eligibilityView(e promotion.Eligibility, breakdown map[domain.Category]int) EligibilityView {
	return EligibilityView{
		Eligible:       e.Eligible,
		CurrentPoints:  e.CurrentPoints,
		RequiredPoints: e.Requirement.MinPoints,
		MaxPoints:      e.Requirement.MaxPoints,
		PointsNeeded:   e.PointsNeeded,
		NextPosition:   string(e.Requirement.NextPosition),
		Breakdown:      breakdownView(breakdown),
	}
}

func simulationView(s promotion.Simulation) SimulationView {
	return SimulationView{
		CurrentPoints:   s.CurrentPoints,
		SimulatedPoints: s.SimulatedPoints,
		PointsGained:    s.PointsGained,
		WouldBeEligible: s.WouldBeEligible,
		PointsNeeded:    s.PointsNeeded,
		Breakdown:       breakdownView(s.Breakdown),
	}
}

// ratesView groups the rate table as category -> value -> points.
func ratesView() map[string]map[string]int {
	out := make(map[string]map[string]int, len(domain.Categories))
	for _, r := range scoring.RateTable() {
		c := string(r.Category)
		if out[c] == nil {
			out[c] = map[string]int{}
		}
		out[c][r.Key] = r.Points
	}
	return out
}

func requirementsView() map[string]RequirementView {
	reqs := domain.PromotionRequirements()
	out := make(map[string]RequirementView, len(reqs))
	for p, r := range reqs {
		out[string(p)] = RequirementView{
			MinPoints:    r.MinPoints,
			MaxPoints:    r.MaxPoints,
			NextPosition: string(r.NextPosition),
		}
	}
	return out
}
