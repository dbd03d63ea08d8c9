package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
)

// FormatAchievementList renders achievements as a table. An empty only
// lists every category.
func FormatAchievementList(set domain.AchievementSet, only domain.Category) string {
	var items []*domain.Achievement
	if only != "" {
		items = set[only]
	} else {
		items = set.All()
	}
	if len(items) == 0 {
		return Dim("No achievements recorded.") + "\n"
	}

	headers := []string{"ID", "CATEGORY", "TITLE", "DETAIL", "POINTS"}
	rows := make([][]string, 0, len(items))
	total := 0
	for _, a := range items {
		rows = append(rows, []string{
			TruncID(a.ID),
			CategoryColor(a.Category()).Render(CategoryLabel(a.Category())),
			a.Label(),
			Dim(a.Meta()),
			strconv.Itoa(a.Points),
		})
		total += a.Points
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	fmt.Fprintf(&b, "\n%s %s\n", Dim(fmt.Sprintf("%d records,", len(items))), Bold(fmt.Sprintf("%d points", total)))
	return b.String()
}

// FormatAchievementAdded confirms a new achievement with the recomputed
// total and verdict.
func FormatAchievementAdded(a *domain.Achievement, f *promotion.Faculty) string {
	return fmt.Sprintf("%s Added %s %q (%s)\n%s",
		StyleGreen.Render("✔"),
		CategoryLabel(a.Category()),
		a.Label(),
		StyleGreen.Render(Signed(a.Points)+" pts"),
		formatTotalLine(f),
	)
}

// FormatAchievementDeleted confirms a removal with the recomputed total.
func FormatAchievementDeleted(a *domain.Achievement, f *promotion.Faculty) string {
	return fmt.Sprintf("%s Deleted %s %q (%s)\n%s",
		StyleRed.Render("✖"),
		CategoryLabel(a.Category()),
		a.Label(),
		StyleRed.Render(Signed(-a.Points)+" pts"),
		formatTotalLine(f),
	)
}

func formatTotalLine(f *promotion.Faculty) string {
	return fmt.Sprintf("%s %d  %s\n", Dim("Total:"), f.Points.Total, EligibilityIndicator(f.Promotion.Eligible))
}
