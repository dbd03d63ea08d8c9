package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/spf13/cobra"
)

// resolveAchievementID resolves an achievement identifier which can be:
//   - A full UUID (passed through directly)
//   - A unique prefix, as printed by "achievement list"
func resolveAchievementID(cmd *cobra.Command, app *App, input string) (string, error) {
	if _, err := app.Faculty.GetAchievement(cmd.Context(), input); err == nil {
		return input, nil
	} else if !errors.Is(err, domain.ErrAchievementNotFound) {
		return "", err
	}

	items, err := app.Faculty.ListAchievements(cmd.Context(), "")
	if err != nil {
		return "", err
	}
	var matches []string
	for _, a := range items {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		// Let the service report the miss with its own error.
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: prefix %q matches %d achievements", domain.ErrAchievementNotFound, input, len(matches))
	}
}
