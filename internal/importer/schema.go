package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/promotrack/internal/domain"
)

// WizardImport is the onboarding payload: a profile plus the initial
// achievement set. Profile may be omitted when it is captured elsewhere,
// e.g. by the interactive form.
type WizardImport struct {
	Profile      *ProfileImport     `json:"profile,omitempty"`
	Achievements AchievementsImport `json:"achievements"`
}

// SimulationImport holds hypothetical additions for a what-if run.
type SimulationImport struct {
	Additions AchievementsImport `json:"additions"`
}

type ProfileImport struct {
	Name            string `json:"name" validate:"required"`
	Degree          string `json:"degree"`
	CurrentPosition string `json:"currentPosition" validate:"required,position"`
	YearsOfService  int    `json:"yearsOfService" validate:"gte=0"`
}

// AchievementsImport lists records per category. Only the six category
// keys are accepted.
type AchievementsImport struct {
	Research    []ResearchImport    `json:"research" validate:"dive"`
	Patents     []PatentImport      `json:"patents" validate:"dive"`
	Supervision []SupervisionImport `json:"supervision" validate:"dive"`
	Conferences []ConferenceImport  `json:"conferences" validate:"dive"`
	Training    []TrainingImport    `json:"training" validate:"dive"`
	Teaching    []TeachingImport    `json:"teaching" validate:"dive"`
}

type ResearchImport struct {
	Title    string `json:"title" validate:"required"`
	Journal  string `json:"journal,omitempty"`
	Quartile string `json:"quartile" validate:"required"`
}

type PatentImport struct {
	Title  string `json:"title" validate:"required"`
	Number string `json:"number,omitempty"`
	Status string `json:"status" validate:"required"`
}

type SupervisionImport struct {
	StudentName  string `json:"studentName" validate:"required"`
	ProjectTitle string `json:"projectTitle,omitempty"`
	Type         string `json:"type" validate:"required"`
}

type ConferenceImport struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

type TrainingImport struct {
	Title     string `json:"title" validate:"required"`
	Provider  string `json:"provider,omitempty"`
	Certified bool   `json:"certified"`
}

type TeachingImport struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required"`
}

// UnmarshalJSON rejects category keys outside the fixed six before
// decoding the lists.
func (a *AchievementsImport) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	for k := range keys {
		if _, err := domain.ParseCategory(k); err != nil {
			return err
		}
	}
	type plain AchievementsImport
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = AchievementsImport(p)
	return nil
}

// LoadWizard reads a wizard file. The result is not yet validated.
func LoadWizard(path string) (*WizardImport, error) {
	var w WizardImport
	if err := loadJSON(path, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadSimulation reads a simulation file. The result is not yet validated.
func LoadSimulation(path string) (*SimulationImport, error) {
	var s SimulationImport
	if err := loadJSON(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
