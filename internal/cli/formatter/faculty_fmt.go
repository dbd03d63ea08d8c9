package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
)

const progressBarWidth = 20

// FormatStatus renders the full record: profile, points breakdown,
// eligibility and application state.
func FormatStatus(f *promotion.Faculty) string {
	var b strings.Builder

	if !f.WizardCompleted {
		b.WriteString(StyleYellow.Render("Onboarding not completed.") + " " +
			Dim("Run `promotrack wizard` to get started.") + "\n\n")
	}

	b.WriteString(Header("Profile") + "\n")
	b.WriteString(formatProfile(f.Profile))
	b.WriteString("\n")

	b.WriteString(Header("Points") + "\n")
	b.WriteString(FormatBreakdown(f.Achievements, f.Points))
	b.WriteString("\n")

	b.WriteString(Header("Eligibility") + "\n")
	b.WriteString(FormatEligibility(f.Eligibility()))
	b.WriteString("\n")

	b.WriteString(Header("Application") + "\n")
	b.WriteString(formatApplication(f.Promotion))
	return b.String()
}

func formatProfile(p domain.Profile) string {
	name := p.Name
	if name == "" {
		name = "--"
	}
	degree := p.Degree
	if degree == "" {
		degree = "--"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", Dim("Name:    "), Bold(name))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Degree:  "), degree)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Position:"), PositionLabel(p.CurrentPosition))
	fmt.Fprintf(&b, "  %s %d\n", Dim("Years:   "), p.YearsOfService)
	return b.String()
}

// FormatBreakdown renders one row per category plus the total.
func FormatBreakdown(set domain.AchievementSet, points domain.PointsResult) string {
	headers := []string{"CATEGORY", "RECORDS", "POINTS"}
	rows := make([][]string, 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		rows = append(rows, []string{
			CategoryColor(c).Render(CategoryLabel(c)),
			strconv.Itoa(len(set[c])),
			strconv.Itoa(points.Breakdown[c]),
		})
	}
	rows = append(rows, []string{Bold("Total"), strconv.Itoa(set.Len()), Bold(strconv.Itoa(points.Total))})
	return RenderTable(headers, rows)
}

// FormatEligibility renders the verdict, the gap to the threshold and both
// progress bars.
func FormatEligibility(e promotion.Eligibility) string {
	var b strings.Builder
	b.WriteString("  " + EligibilityIndicator(e.Eligible) + "\n")

	if !e.Configured {
		fmt.Fprintf(&b, "  %s\n", Dim("No promotion tier configured for this position."))
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %d / %d\n", Dim("Points:   "), e.CurrentPoints, e.Requirement.MinPoints)
	if e.PointsNeeded > 0 {
		fmt.Fprintf(&b, "  %s %d more for %s\n", Dim("Needed:   "), e.PointsNeeded, PositionLabel(e.Requirement.NextPosition))
	} else {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Next:     "), PositionLabel(e.Requirement.NextPosition))
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Threshold:"), RenderThresholdBar(e.ThresholdProgress(), progressBarWidth))
	fmt.Fprintf(&b, "  %s %s %s\n", Dim("Tier:     "), RenderProgress(e.Progress(), progressBarWidth),
		Dim(fmt.Sprintf("of %d", e.Requirement.MaxPoints)))
	return b.String()
}

func formatApplication(s domain.PromotionStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", Dim("Status:"), ApplicationPill(s.Status))
	if s.ApplicationDate != nil {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Date:  "), HumanDate(s.ApplicationDate))
	}
	return b.String()
}

// FormatApplied confirms a submitted application.
func FormatApplied(f *promotion.Faculty) string {
	e := f.Eligibility()
	return fmt.Sprintf("%s Application submitted for %s on %s (%d points).\n",
		StyleGreen.Render("✔"),
		PositionLabel(e.Requirement.NextPosition),
		HumanDate(f.Promotion.ApplicationDate),
		f.Points.Total,
	)
}

// FormatSimulation renders a what-if comparison.
func FormatSimulation(sim promotion.Simulation) string {
	var b strings.Builder
	b.WriteString(Header("Simulation") + "\n")
	fmt.Fprintf(&b, "  %s %d\n", Dim("Current:  "), sim.CurrentPoints)
	fmt.Fprintf(&b, "  %s %d\n", Dim("Simulated:"), sim.SimulatedPoints)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Gained:   "), StyleGreen.Render(Signed(sim.PointsGained)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		rows = append(rows, []string{CategoryColor(c).Render(CategoryLabel(c)), strconv.Itoa(sim.Breakdown[c])})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "POINTS"}, rows))
	b.WriteString("\n")

	if sim.WouldBeEligible {
		b.WriteString(EligibilityIndicator(true) + Dim(" with these additions") + "\n")
	} else {
		b.WriteString(EligibilityIndicator(false) + Dim(fmt.Sprintf(" still %d points short", sim.PointsNeeded)) + "\n")
	}
	return b.String()
}
