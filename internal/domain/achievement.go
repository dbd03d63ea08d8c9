package domain

import "time"

// Details is the category-specific payload of an achievement. Exactly one
// implementation exists per category; the set is closed to this package.
type Details interface {
	Category() Category
	Label() string
	isDetails()
}

type Research struct {
	Title    string
	Journal  string
	Quartile Quartile
}

type Patent struct {
	Title  string
	Number string
	Status PatentStatus
}

type Supervision struct {
	StudentName  string
	ProjectTitle string
	Type         SupervisionType
}

type Conference struct {
	Title string
	Type  ConferenceType
	Role  ConferenceRole
}

type Training struct {
	Title     string
	Provider  string
	Certified bool
}

type Teaching struct {
	Title string
	Type  TeachingType
}

func (Research) Category() Category    { return CategoryResearch }
func (Patent) Category() Category      { return CategoryPatents }
func (Supervision) Category() Category { return CategorySupervision }
func (Conference) Category() Category  { return CategoryConferences }
func (Training) Category() Category    { return CategoryTraining }
func (Teaching) Category() Category    { return CategoryTeaching }

func (r Research) Label() string    { return r.Title }
func (p Patent) Label() string      { return p.Title }
func (s Supervision) Label() string { return s.StudentName }
func (c Conference) Label() string  { return c.Title }
func (t Training) Label() string    { return t.Title }
func (t Teaching) Label() string    { return t.Title }

func (Research) isDetails()    {}
func (Patent) isDetails()      {}
func (Supervision) isDetails() {}
func (Conference) isDetails()  {}
func (Training) isDetails()    {}
func (Teaching) isDetails()    {}

// Achievement is one recorded accomplishment. Points is a cached projection
// written by the scoring pass; the full recompute is the source of truth.
type Achievement struct {
	ID        string
	Details   Details
	Points    int
	CreatedAt time.Time
}

func (a *Achievement) Category() Category {
	return a.Details.Category()
}

func (a *Achievement) Label() string {
	return a.Details.Label()
}

// Meta returns the short descriptor shown next to an achievement's label,
// e.g. "Q1" for research or "local / keynote" for a conference.
func (a *Achievement) Meta() string {
	switch d := a.Details.(type) {
	case Research:
		return CoalesceStr(string(d.Quartile), "-")
	case Patent:
		return CoalesceStr(string(d.Status), "-")
	case Supervision:
		return CoalesceStr(string(d.Type), "-")
	case Conference:
		return string(d.Type) + " / " + string(d.Role)
	case Training:
		if d.Certified {
			return "certified"
		}
		return "uncertified"
	case Teaching:
		return CoalesceStr(string(d.Type), "-")
	}
	return ""
}
