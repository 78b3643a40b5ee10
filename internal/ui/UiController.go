package ui

import (
	"io"

	"github.com/Mshel/snakeduel/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg Variant
type SetupSubmitMsg struct {
	Names  [game.PlayerCount]string
	Colors [game.PlayerCount]game.Color
}

type ControllerModel struct {
	CurrentScreen Screen
	Config        game.Config
	Logger        *log.Logger

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
	err          error
}

func NewControllerModel(cfg game.Config, logger *log.Logger, screenWidth int, screenHeight int) ControllerModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return ControllerModel{
		Config:        cfg,
		Logger:        logger,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(cfg, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		// every screen keeps its own size
		var introCmd, setupCmd tea.Cmd
		m.IntroModel, introCmd = m.IntroModel.Update(msg)
		m.SetupModel, setupCmd = m.SetupModel.Update(msg)
		cmds := []tea.Cmd{introCmd, setupCmd}
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case IntroSubmitMsg:
		m.Config.SupportsRestart = Variant(msg) == VariantClassic
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		cfg := m.Config
		cfg.PlayerNames = msg.Names[:]
		cfg.SnakeColors = msg.Colors[:]

		round, err := game.NewRound(cfg, game.WithLogger(m.Logger))
		if err != nil {
			m.Logger.Error("Could not create round", "error", err)
			m.err = err
			return m, tea.Quit
		}
		gameModel, err := NewGameModel(round, m.Logger, m.ScreenWidth, m.ScreenHeight)
		if err != nil {
			m.Logger.Error("Could not create game view", "error", err)
			m.err = err
			return m, tea.Quit
		}

		m.Logger.Info("Round created", "players", cfg.PlayerNames, "restart", cfg.SupportsRestart)
		m.CurrentScreen = GameScreen
		m.GameModel = gameModel
		return m, m.GameModel.Init()
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	}
	return m, cmd
}

// Err reports a fatal error from setup or from the running game.
func (m ControllerModel) Err() error {
	if m.err != nil {
		return m.err
	}
	if gameModel, ok := m.GameModel.(GameViewModel); ok {
		return gameModel.Err()
	}
	return nil
}
