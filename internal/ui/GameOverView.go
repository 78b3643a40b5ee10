package ui

import (
	"strings"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Padding(1, 3).
				Align(lipgloss.Center)

	bannerHintStyle = lipgloss.NewStyle().
			Faint(true).
			Margin(1, 0, 0, 0).
			Align(lipgloss.Center)

	bannerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)
)

// renderBanner draws a round message (start prompt, winner, draw) centred in
// a width x height box. The first line is the headline, the rest are hints.
func renderBanner(message string, width, height int, background game.Color) string {
	lines := strings.Split(message, "\n")
	parts := []string{bannerTitleStyle.Render(lines[0])}
	if len(lines) > 1 {
		parts = append(parts, bannerHintStyle.Render(strings.Join(lines[1:], "\n")))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		bannerBoxStyle.Render(content),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(string(background))),
	)
}
