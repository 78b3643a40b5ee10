package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

// renderStatusPanel draws the players, the round state and the controls.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(sectionTitleStyle.Render("--- Players ---") + "\n")
	for _, id := range []game.PlayerID{game.PlayerOne, game.PlayerTwo} {
		snake := m.round.Snake(id)
		colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(snake.Color)))
		statusContent.WriteString(fmt.Sprintf("%s%s %s\n", colorStyle.Render("● "), snake.Name, headRunes[snake.Direction]))
		statusContent.WriteString(fmt.Sprintf("  Length: %d\n", snake.Len()))
	}

	cfg := m.round.Config()
	variant := "Sudden Death"
	if cfg.SupportsRestart {
		variant = "Classic"
	}
	statusContent.WriteString("\n" + sectionTitleStyle.Render("--- Round ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Mode: %s\n", variant))
	statusContent.WriteString(fmt.Sprintf("Phase: %s\n", m.round.Phase()))
	statusContent.WriteString(fmt.Sprintf("Tick: %d (%d/s)\n", m.round.Ticks(), cfg.TickRate))
	if m.round.Phase() == game.PhaseOver {
		statusContent.WriteString(fmt.Sprintf("Result: %s\n", m.round.Outcome()))
	}

	statusContent.WriteString("\n" + sectionTitleStyle.Render("--- Controls ---") + "\n")
	statusContent.WriteString(m.help.FullHelpView(m.keys.FullHelp()))

	return statusPanelStyle.Render(statusContent.String())
}
