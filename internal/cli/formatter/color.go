package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the style used for a category's label.
func CategoryColor(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryResearch:
		return StyleBlue
	case domain.CategoryPatents:
		return StylePurple
	case domain.CategorySupervision:
		return StyleGreen
	case domain.CategoryConferences:
		return StyleYellow
	case domain.CategoryTraining:
		return StyleFg
	case domain.CategoryTeaching:
		return StyleHeader
	default:
		return StyleDim
	}
}

// EligibilityIndicator returns a colored verdict such as "● ELIGIBLE".
func EligibilityIndicator(eligible bool) string {
	if eligible {
		return StyleGreen.Render("● ELIGIBLE")
	}
	return StyleRed.Render("● NOT ELIGIBLE")
}

// ApplicationPill returns a colored application status indicator.
func ApplicationPill(status domain.ApplicationStatus) string {
	switch status {
	case domain.ApplicationPending:
		return StyleYellow.Render("◐ Pending")
	case domain.ApplicationNotApplied:
		return StyleDim.Render("○ Not applied")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
