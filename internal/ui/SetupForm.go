package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	colorSwatchStyle = lipgloss.NewStyle().Width(2)
	buttonStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// SnakePalette is the set of colours players can pick from. Red is kept for food.
var SnakePalette = []game.Color{"46", "21", "226", "201", "51", "208", "129", "255"}

// focus order: name 1, colour 1, name 2, colour 2, submit
const (
	focusSubmit     = 2 * game.PlayerCount
	setupFocusCount = focusSubmit + 1
)

// SetupModel is the form where both players enter a name and pick a colour.
type SetupModel struct {
	nameInputs   [game.PlayerCount]textinput.Model
	colorIndex   [game.PlayerCount]int
	defaultNames [game.PlayerCount]string
	focusIndex   int
	errMessage   string
	width        int
	height       int
}

func NewInitialSetupModel(cfg game.Config, w, h int) SetupModel {
	m := SetupModel{width: w, height: h}

	for i := range m.nameInputs {
		ti := textinput.New()
		ti.Placeholder = cfg.PlayerNames[i]
		ti.CharLimit = 20
		ti.PromptStyle = focusedStyle
		ti.TextStyle = focusedStyle
		m.nameInputs[i] = ti
		m.defaultNames[i] = cfg.PlayerNames[i]
		m.colorIndex[i] = paletteIndex(cfg.SnakeColors[i], i)
	}
	m.nameInputs[0].Focus()

	return m
}

func paletteIndex(c game.Color, fallback int) int {
	for i, candidate := range SnakePalette {
		if candidate == c {
			return i
		}
	}
	return fallback % len(SnakePalette)
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		switch s {
		case "tab", "shift+tab":
			if s == "tab" {
				m.setFocus(m.focusIndex + 1)
			} else {
				m.setFocus(m.focusIndex - 1)
			}
			return m, nil
		case "enter":
			if m.focusIndex != focusSubmit {
				m.setFocus(m.focusIndex + 1)
				return m, nil
			}
			return m.submit()
		}

		// colour pickers sit on odd focus indexes
		if m.focusIndex%2 == 1 && m.focusIndex < focusSubmit {
			player := m.focusIndex / 2
			switch s {
			case "left", "h":
				m.colorIndex[player] = (m.colorIndex[player] - 1 + len(SnakePalette)) % len(SnakePalette)
			case "right", "l":
				m.colorIndex[player] = (m.colorIndex[player] + 1) % len(SnakePalette)
			}
			return m, nil
		}

		if m.focusIndex%2 == 0 && m.focusIndex < focusSubmit {
			var cmd tea.Cmd
			player := m.focusIndex / 2
			m.nameInputs[player], cmd = m.nameInputs[player].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *SetupModel) setFocus(index int) {
	m.focusIndex = (index + setupFocusCount) % setupFocusCount
	for i := range m.nameInputs {
		if m.focusIndex == 2*i {
			m.nameInputs[i].Focus()
		} else {
			m.nameInputs[i].Blur()
		}
	}
}

func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	if m.colorIndex[0] == m.colorIndex[1] {
		m.errMessage = "Players need different colours"
		return m, nil
	}
	m.errMessage = ""

	submitted := SetupSubmitMsg{}
	for i := range m.nameInputs {
		name := strings.TrimSpace(m.nameInputs[i].Value())
		if name == "" {
			name = m.defaultNames[i]
		}
		submitted.Names[i] = name
		submitted.Colors[i] = SnakePalette[m.colorIndex[i]]
	}
	return m, func() tea.Msg { return submitted }
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	for i := range m.nameInputs {
		title := fmt.Sprintf("Player %d", i+1)
		if m.focusIndex/2 == i && m.focusIndex < focusSubmit {
			b.WriteString(center(focusedStyle.Bold(true).Render(title)))
		} else {
			b.WriteString(center(blurredStyle.Render(title)))
		}
		b.WriteString("\n")
		b.WriteString(center(m.nameInputs[i].View()))
		b.WriteString("\n")
		b.WriteString(center(m.renderSwatches(i)))
		b.WriteString("\n\n")
	}

	submitText := "Play"
	if m.focusIndex == focusSubmit {
		b.WriteString(center(submitButtonStyle.Render(submitText)))
	} else {
		b.WriteString(center(blurredButtonStyle.Render(submitText)))
	}
	b.WriteString("\n")

	if m.errMessage != "" {
		b.WriteString(center(errorStyle.Render(m.errMessage)))
	}
	b.WriteString("\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, left/right to pick a colour, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m SetupModel) renderSwatches(player int) string {
	var swatches strings.Builder
	for i, c := range SnakePalette {
		style := colorSwatchStyle.Foreground(lipgloss.Color(string(c)))
		if i == m.colorIndex[player] {
			swatches.WriteString(style.Render("██"))
		} else {
			swatches.WriteString(style.Render("░░"))
		}
		swatches.WriteString(" ")
	}

	prompt := blurredStyle.Render("colour ")
	if m.focusIndex == 2*player+1 {
		prompt = focusedStyle.Render("colour ")
	}
	return prompt + swatches.String()
}
