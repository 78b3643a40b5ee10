package ui

import (
	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds the shared keyboard: WASD for player one, arrows for player two.
type KeyMap struct {
	PlayerOneUp    key.Binding
	PlayerOneDown  key.Binding
	PlayerOneLeft  key.Binding
	PlayerOneRight key.Binding

	PlayerTwoUp    key.Binding
	PlayerTwoDown  key.Binding
	PlayerTwoLeft  key.Binding
	PlayerTwoRight key.Binding

	Start key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayerOneUp:    key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w/a/s/d", "player 1")),
		PlayerOneDown:  key.NewBinding(key.WithKeys("s", "S")),
		PlayerOneLeft:  key.NewBinding(key.WithKeys("a", "A")),
		PlayerOneRight: key.NewBinding(key.WithKeys("d", "D")),

		PlayerTwoUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "player 2")),
		PlayerTwoDown:  key.NewBinding(key.WithKeys("down")),
		PlayerTwoLeft:  key.NewBinding(key.WithKeys("left")),
		PlayerTwoRight: key.NewBinding(key.WithKeys("right")),

		Start: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/restart")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
	}
}

// Input translates a key press into a round input. Unbound keys report false.
func (k KeyMap) Input(msg tea.KeyMsg) (game.Input, bool) {
	switch {
	case key.Matches(msg, k.PlayerOneUp):
		return game.TurnInput(game.PlayerOne, game.Up), true
	case key.Matches(msg, k.PlayerOneDown):
		return game.TurnInput(game.PlayerOne, game.Down), true
	case key.Matches(msg, k.PlayerOneLeft):
		return game.TurnInput(game.PlayerOne, game.Left), true
	case key.Matches(msg, k.PlayerOneRight):
		return game.TurnInput(game.PlayerOne, game.Right), true
	case key.Matches(msg, k.PlayerTwoUp):
		return game.TurnInput(game.PlayerTwo, game.Up), true
	case key.Matches(msg, k.PlayerTwoDown):
		return game.TurnInput(game.PlayerTwo, game.Down), true
	case key.Matches(msg, k.PlayerTwoLeft):
		return game.TurnInput(game.PlayerTwo, game.Left), true
	case key.Matches(msg, k.PlayerTwoRight):
		return game.TurnInput(game.PlayerTwo, game.Right), true
	case key.Matches(msg, k.Start):
		return game.StartInput, true
	case key.Matches(msg, k.Quit):
		return game.QuitInput, true
	}
	return game.Input{}, false
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayerOneUp, k.PlayerTwoUp, k.Start, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PlayerOneUp, k.PlayerTwoUp}, {k.Start, k.Quit}}
}
