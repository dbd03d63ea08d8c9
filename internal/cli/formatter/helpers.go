package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanDate formats a date as "Mar 2, 2026", or "--" when unset.
func HumanDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "--"
	}
	return t.Local().Format("Jan 2, 2006")
}

// PositionLabel turns "assistant_professor" into "Assistant Professor".
func PositionLabel(p domain.Position) string {
	if p == "" {
		return "--"
	}
	return titleWords(string(p))
}

// CategoryLabel turns a category name into a capitalized label.
func CategoryLabel(c domain.Category) string {
	return titleWords(string(c))
}

func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Signed formats n with an explicit sign, e.g. "+12".
func Signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
