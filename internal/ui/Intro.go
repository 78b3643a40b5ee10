package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant selects how a round ends.
type Variant int

const (
	// VariantClassic waits for SPACE to start and offers a rematch after each round.
	VariantClassic Variant = iota
	// VariantSuddenDeath starts at once and exits shortly after the first round ends.
	VariantSuddenDeath
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected Variant
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: VariantClassic, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			if m.selected == VariantClassic {
				m.selected = VariantSuddenDeath
			} else {
				m.selected = VariantClassic
			}
		case "enter", " ":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

var snakeDuelAscii = `
 ▄▄▄▄▄  ▄▄    ▄   ▄▄▄   ▄   ▄  ▄▄▄▄▄     ▄▄▄▄   ▄   ▄  ▄▄▄▄▄  ▄
 █      █ █   █  █   █  █  █   █         █   █  █   █  █      █
 ▀▀▀▀█  █  █  █  █▀▀▀█  █▀█    █▀▀▀      █   █  █   █  █▀▀▀   █
 ▄▄▄▄█  █   ▀▄█  █   █  █  ▀▄  █▄▄▄▄     █▄▄▄▀  ▀▄▄▄▀  █▄▄▄▄  █▄▄▄▄
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("46")).
					Foreground(lipgloss.Color("0"))

	introHelpStyle = lipgloss.NewStyle().Faint(true)
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(snakeDuelAscii))
	sb.WriteString("\n")

	classic := introButtonStyle.Render("Classic")
	suddenDeath := introButtonStyle.Render("Sudden Death")

	if m.selected == VariantClassic {
		classic = introSelectedButtonStyle.Render("Classic")
	} else {
		suddenDeath = introSelectedButtonStyle.Render("Sudden Death")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, classic, suddenDeath)
	help := introHelpStyle.Render("(left/right to choose, enter to continue, q to quit)")

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons, help)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
