package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/Mshel/snakeduel/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestGameModel(t *testing.T, mutate func(*game.Config)) GameViewModel {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.PlayerNames = []string{"Ana", "Bo"}
	if mutate != nil {
		mutate(&cfg)
	}
	round, err := game.NewRound(cfg)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}
	m, err := NewGameModel(round, nil, 0, 0)
	if err != nil {
		t.Fatalf("new game model: %v", err)
	}
	return m
}

func update(t *testing.T, m GameViewModel, msg tea.Msg) (GameViewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(GameViewModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameViewKeysWaitForTick(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Round().Phase() != game.PhaseAwaitingStart {
		t.Fatal("input applied before the tick")
	}

	m, cmd := update(t, m, GameTickMsg{})
	if m.Round().Phase() != game.PhasePlaying {
		t.Fatalf("expected playing, got %s", m.Round().Phase())
	}
	if cmd == nil || isQuit(cmd) {
		t.Fatal("expected the next tick to be scheduled")
	}
	if m.Round().Ticks() != 1 {
		t.Fatalf("expected one tick, got %d", m.Round().Ticks())
	}
}

func TestGameViewQuitKey(t *testing.T) {
	m := newTestGameModel(t, nil)

	m, _ = update(t, m, runeKey('q'))
	_, cmd := update(t, m, GameTickMsg{})
	if !isQuit(cmd) {
		t.Fatal("expected quit after the quit key is drained")
	}
}

func TestGameViewSchedulesExitForTerminalRound(t *testing.T) {
	m := newTestGameModel(t, func(c *game.Config) {
		c.SupportsRestart = false
		c.ExitDelay = 0
	})
	crasher := m.Round().Snake(game.PlayerOne)
	crasher.Body = []game.Position{{X: 675, Y: 100}}
	crasher.SetDirection(game.Right)

	m, cmd := update(t, m, GameTickMsg{})
	if !m.Round().Terminal() {
		t.Fatal("expected a terminal round")
	}
	if cmd == nil {
		t.Fatal("expected the exit timer")
	}
	if !strings.Contains(m.surface.Frame(), "Bo Wins!") {
		t.Fatalf("expected winner banner, got:\n%s", m.surface.Frame())
	}

	m, cmd = update(t, m, GameTickMsg{})
	if cmd != nil {
		t.Fatal("no more ticks once the exit is scheduled")
	}

	_, cmd = update(t, m, RoundExpiredMsg{})
	if !isQuit(cmd) {
		t.Fatal("expected quit when the round expires")
	}
}

func TestGameViewQuitKeyDuringExitDelay(t *testing.T) {
	m := newTestGameModel(t, func(c *game.Config) {
		c.SupportsRestart = false
		c.ExitDelay = time.Hour
	})
	crasher := m.Round().Snake(game.PlayerOne)
	crasher.Body = []game.Position{{X: 675, Y: 100}}
	crasher.SetDirection(game.Right)

	m, _ = update(t, m, GameTickMsg{})
	if !m.Round().Terminal() {
		t.Fatal("expected a terminal round")
	}

	_, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Fatal("quit must not wait for the exit delay")
	}
}

func TestGameViewShowsPlayers(t *testing.T) {
	m := newTestGameModel(t, nil)

	view := m.View()
	for _, want := range []string{"Ana", "Bo", "Classic", "Press SPACE to start", "player 1", "player 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
