package repository

import (
	"fmt"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// achievementColumns is the flat row shape shared by all six variants.
// detail holds the optional secondary text (journal, patent number,
// project title or provider); kind holds the single-valued discriminant.
type achievementColumns struct {
	category  string
	title     string
	detail    string
	kind      string
	role      string
	certified int
}

func columnsFor(d domain.Details) (achievementColumns, error) {
	cols := achievementColumns{category: string(d.Category())}
	switch v := d.(type) {
	case domain.Research:
		cols.title, cols.detail, cols.kind = v.Title, v.Journal, string(v.Quartile)
	case domain.Patent:
		cols.title, cols.detail, cols.kind = v.Title, v.Number, string(v.Status)
	case domain.Supervision:
		cols.title, cols.detail, cols.kind = v.StudentName, v.ProjectTitle, string(v.Type)
	case domain.Conference:
		cols.title, cols.kind, cols.role = v.Title, string(v.Type), string(v.Role)
	case domain.Training:
		cols.title, cols.detail, cols.certified = v.Title, v.Provider, boolToInt(v.Certified)
	case domain.Teaching:
		cols.title, cols.kind = v.Title, string(v.Type)
	default:
		return cols, fmt.Errorf("unsupported achievement details %T", d)
	}
	return cols, nil
}

func (c achievementColumns) details() (domain.Details, error) {
	category, err := domain.ParseCategory(c.category)
	if err != nil {
		return nil, err
	}
	switch category {
	case domain.CategoryResearch:
		return domain.Research{Title: c.title, Journal: c.detail, Quartile: domain.Quartile(c.kind)}, nil
	case domain.CategoryPatents:
		return domain.Patent{Title: c.title, Number: c.detail, Status: domain.PatentStatus(c.kind)}, nil
	case domain.CategorySupervision:
		return domain.Supervision{StudentName: c.title, ProjectTitle: c.detail, Type: domain.SupervisionType(c.kind)}, nil
	case domain.CategoryConferences:
		return domain.Conference{Title: c.title, Type: domain.ConferenceType(c.kind), Role: domain.ConferenceRole(c.role)}, nil
	case domain.CategoryTraining:
		return domain.Training{Title: c.title, Provider: c.detail, Certified: intToBool(c.certified)}, nil
	default:
		return domain.Teaching{Title: c.title, Type: domain.TeachingType(c.kind)}, nil
	}
}
