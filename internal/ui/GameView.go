package ui

import (
	"io"
	"time"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// GameTickMsg asks the view to advance the round by one tick.
type GameTickMsg struct{}

// RoundExpiredMsg fires ExitDelay after a round that cannot restart has ended.
type RoundExpiredMsg struct{}

var mapViewStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 0)

// GameViewModel drives one Round: it queues key presses as round input,
// ticks the round on a timer and shows the last rendered frame.
type GameViewModel struct {
	round   *game.Round
	surface *TerminalSurface
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	ScreenWidth   int
	ScreenHeight  int
	exitScheduled bool
	err           error
}

func NewGameModel(round *game.Round, logger *log.Logger, screenWidth int, screenHeight int) (GameViewModel, error) {
	surface, err := NewTerminalSurface(round.Grid())
	if err != nil {
		return GameViewModel{}, err
	}
	if err := round.Render(surface); err != nil {
		return GameViewModel{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameViewModel{
		round:        round,
		surface:      surface,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		logger:       logger,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}, nil
}

func (m GameViewModel) Init() tea.Cmd {
	return m.nextTick()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		in, ok := m.keys.Input(msg)
		if !ok {
			return m, nil
		}
		// no more ticks drain the queue once the exit timer runs
		if m.exitScheduled && in.Kind == game.InputQuit {
			m.logger.Info("Quit requested while waiting to exit")
			return m, tea.Quit
		}
		m.round.Enqueue(in)
		return m, nil

	case GameTickMsg:
		return m.tick()

	case RoundExpiredMsg:
		m.logger.Info("Round expired, exiting", "outcome", m.round.Outcome())
		return m, tea.Quit
	}

	return m, nil
}

func (m GameViewModel) tick() (tea.Model, tea.Cmd) {
	if m.exitScheduled {
		return m, nil
	}

	m.round.Tick()
	if m.round.Quitting() {
		return m, tea.Quit
	}

	if err := m.round.Render(m.surface); err != nil {
		m.logger.Error("Failed to render round", "error", err)
		m.err = err
		return m, tea.Quit
	}

	if m.round.Terminal() {
		m.exitScheduled = true
		delay := m.round.Config().ExitDelay
		m.logger.Info("Round finished", "outcome", m.round.Outcome(), "exit_in", delay)
		return m, tea.Tick(delay, func(time.Time) tea.Msg { return RoundExpiredMsg{} })
	}

	return m, m.nextTick()
}

func (m GameViewModel) nextTick() tea.Cmd {
	return tea.Tick(m.round.NextTickIn(), func(time.Time) tea.Msg {
		return GameTickMsg{}
	})
}

func (m GameViewModel) View() string {
	board := mapViewStyle.Render(m.surface.Frame())
	panel := m.renderStatusPanel()

	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)
	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return view
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, view)
}

// Err is the fatal error that ended the view, if any.
func (m GameViewModel) Err() error {
	return m.err
}

func (m GameViewModel) Round() *game.Round {
	return m.round
}
