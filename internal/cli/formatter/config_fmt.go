package formatter

import (
	"strconv"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/scoring"
)

// FormatRates renders the points rate table with each category's fallback.
func FormatRates(rows []scoring.RateRow) string {
	out := make([][]string, 0, len(rows))
	var last domain.Category
	for _, r := range rows {
		label := ""
		if r.Category != last {
			label = CategoryColor(r.Category).Render(CategoryLabel(r.Category))
			last = r.Category
		}
		out = append(out, []string{label, r.Key, strconv.Itoa(r.Points)})
	}
	for _, c := range domain.Categories {
		if fb, ok := scoring.Fallback(c); ok {
			out = append(out, []string{Dim(CategoryLabel(c)), Dim("(other)"), Dim(strconv.Itoa(fb))})
		}
	}
	return RenderTable([]string{"CATEGORY", "VALUE", "POINTS"}, out)
}

// FormatRequirements renders the requirement tier of every position.
func FormatRequirements(reqs map[domain.Position]domain.PromotionRequirement) string {
	rows := make([][]string, 0, len(reqs))
	for _, p := range domain.Positions {
		req, ok := reqs[p]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			Bold(PositionLabel(p)),
			strconv.Itoa(req.MinPoints),
			strconv.Itoa(req.MaxPoints),
			PositionLabel(req.NextPosition),
		})
	}
	return RenderTable([]string{"POSITION", "MIN", "MAX", "NEXT"}, rows)
}
