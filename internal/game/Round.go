package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting start"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Outcome is how a round ended. It is OutcomeNone until the round is over.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerOneWins
	OutcomePlayerTwoWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerOneWins:
		return "player one wins"
	case OutcomePlayerTwoWins:
		return "player two wins"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

type InputKind int

const (
	InputDirection InputKind = iota
	InputStart
	InputQuit
)

// Input is a single key event as the round understands it.
type Input struct {
	Kind      InputKind
	Player    PlayerID
	Direction Direction
}

func TurnInput(player PlayerID, d Direction) Input {
	return Input{Kind: InputDirection, Player: player, Direction: d}
}

var (
	StartInput = Input{Kind: InputStart}
	QuitInput  = Input{Kind: InputQuit}
)

type Option func(*Round)

func WithLogger(logger *log.Logger) Option {
	return func(r *Round) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRand makes food placement reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(r *Round) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// Round is the game state machine for one match between two snakes.
// It is driven from a single goroutine: Enqueue between ticks, then Tick, then Render.
type Round struct {
	cfg    Config
	grid   Grid
	rng    *rand.Rand
	logger *log.Logger

	snakes  [PlayerCount]*Snake
	food    Food
	phase   Phase
	outcome Outcome

	pending []Input
	quit    bool
	ticks   int
}

func NewRound(cfg Config, opts ...Option) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	r := &Round{
		cfg:    cfg,
		grid:   grid,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r.rng = rand.New(rand.NewSource(seed))
	}

	r.reset()
	if !cfg.SupportsRestart {
		r.setPhase(PhasePlaying)
	}
	return r, nil
}

func (r *Round) reset() {
	for i := range r.snakes {
		id := PlayerID(i)
		r.snakes[i] = NewSnake(id, r.cfg.PlayerNames[i], r.cfg.SnakeColors[i], r.grid.SpawnPoint(id), r.grid.CellSize)
	}
	r.food = r.spawnFood()
	r.outcome = OutcomeNone
	r.phase = PhaseAwaitingStart
	r.ticks = 0
}

// Enqueue queues an input for the next Tick.
func (r *Round) Enqueue(in Input) {
	r.pending = append(r.pending, in)
}

// Tick drains queued input and, while playing, advances the board one step.
func (r *Round) Tick() {
	r.drainInputs()
	if r.quit || r.phase != PhasePlaying {
		return
	}
	r.ticks++
	r.step()
}

func (r *Round) drainInputs() {
	pending := r.pending
	r.pending = nil

	for _, in := range pending {
		switch in.Kind {
		case InputQuit:
			r.logger.Info("Quit requested", "phase", r.phase)
			r.quit = true
			return
		case InputStart:
			r.handleStart()
		case InputDirection:
			r.turn(in.Player, in.Direction)
		}
	}
}

func (r *Round) handleStart() {
	switch r.phase {
	case PhaseAwaitingStart:
		if r.outcome == OutcomeNone {
			r.setPhase(PhasePlaying)
		}
	case PhaseOver:
		if r.cfg.SupportsRestart {
			r.logger.Info("Round reset")
			r.reset()
		}
	}
}

// turn applies a direction change unless it would send the snake back into its neck.
func (r *Round) turn(player PlayerID, d Direction) {
	if !player.IsValid() {
		return
	}
	snake := r.snakes[player]
	if snake.CanTurn(d) {
		snake.SetDirection(d)
	}
}

func (r *Round) step() {
	for _, snake := range r.snakes {
		snake.Move()
	}

	r.feed()

	one, two := r.snakes[PlayerOne], r.snakes[PlayerTwo]
	oneCrashed := one.CheckCollision(r.grid, two)
	twoCrashed := two.CheckCollision(r.grid, one)

	switch {
	case oneCrashed && twoCrashed:
		r.outcome = OutcomeDraw
	case oneCrashed:
		r.outcome = OutcomePlayerTwoWins
	case twoCrashed:
		r.outcome = OutcomePlayerOneWins
	default:
		return
	}

	r.logger.Info("Round over", "outcome", r.outcome, "ticks", r.ticks,
		"len_one", one.Len(), "len_two", two.Len())
	r.setPhase(PhaseOver)
}

// feed grows every snake whose head is on the food, then replaces the food once.
func (r *Round) feed() {
	target := r.food.Position
	eaten := false
	for _, snake := range r.snakes {
		if snake.Head() == target {
			snake.Grow()
			eaten = true
		}
	}

	if eaten {
		r.food = r.spawnFood()
		r.logger.Debug("Food respawned", "from", target, "to", r.food.Position)
	}
}

func (r *Round) spawnFood() Food {
	var occupied []Position
	if r.cfg.FoodAvoidsSnakes {
		for _, snake := range r.snakes {
			occupied = append(occupied, snake.Body...)
		}
	}
	return SpawnFood(r.grid, r.rng, r.cfg.FoodColor, occupied, r.cfg.FoodAvoidsSnakes)
}

func (r *Round) setPhase(next Phase) {
	if r.phase == next {
		return
	}
	r.logger.Info("Phase changed", "from", r.phase, "to", next)
	r.phase = next
}

// Render draws the board while playing, or the current message otherwise.
func (r *Round) Render(surface Surface) error {
	surface.Clear(r.cfg.BackgroundColor)

	if r.phase == PhasePlaying {
		r.food.Draw(surface, r.grid.CellSize)
		for _, snake := range r.snakes {
			snake.Draw(surface)
		}
	} else {
		surface.Text(r.Message())
	}

	if err := surface.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Message is the text shown instead of the board, empty while playing.
func (r *Round) Message() string {
	switch r.phase {
	case PhaseAwaitingStart:
		return "Press SPACE to start"
	case PhaseOver:
		var msg string
		if winner := r.Winner(); winner != nil {
			msg = fmt.Sprintf("%s Wins!", winner.Name)
		} else {
			msg = "Draw!"
		}
		if r.cfg.SupportsRestart {
			msg += "\nPress SPACE to play again"
		}
		return msg
	}
	return ""
}

// Winner is the surviving snake of a finished round, nil on a draw or before the end.
func (r *Round) Winner() *Snake {
	switch r.outcome {
	case OutcomePlayerOneWins:
		return r.snakes[PlayerOne]
	case OutcomePlayerTwoWins:
		return r.snakes[PlayerTwo]
	}
	return nil
}

// NextTickIn is how long the host should wait before the next Tick.
func (r *Round) NextTickIn() time.Duration {
	if r.phase == PhasePlaying {
		return r.cfg.TickInterval()
	}
	return r.cfg.IdleInterval()
}

// Terminal reports whether the round has ended for good: it is over and
// cannot be restarted, so the host should exit after Config.ExitDelay.
func (r *Round) Terminal() bool {
	return r.phase == PhaseOver && !r.cfg.SupportsRestart
}

func (r *Round) Phase() Phase { return r.phase }
func (r *Round) Outcome() Outcome { return r.outcome }
func (r *Round) Snake(id PlayerID) *Snake { return r.snakes[id] }
func (r *Round) Food() Food { return r.food }
func (r *Round) Grid() Grid { return r.grid }
func (r *Round) Config() Config { return r.cfg }
func (r *Round) Quitting() bool { return r.quit }
func (r *Round) Ticks() int { return r.ticks }
