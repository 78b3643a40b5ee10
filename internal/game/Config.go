package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	MinTickRate = 5
	MaxTickRate = 1000

	PlayerCount = 2
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a Round needs to know about the board and the rules.
// Values come from SNAKEDUEL_* environment variables, falling back to the
// defaults of the classic 700x700 board.
type Config struct {
	Width    int `env:"SNAKEDUEL_WIDTH"     envDefault:"700"`
	Height   int `env:"SNAKEDUEL_HEIGHT"    envDefault:"700"`
	CellSize int `env:"SNAKEDUEL_CELL_SIZE" envDefault:"25"`

	// TickRate is the number of game ticks per second while playing.
	TickRate int `env:"SNAKEDUEL_TICK_RATE" envDefault:"5"`
	// IdleTickRate is how often the loop polls input while a message is shown.
	IdleTickRate int `env:"SNAKEDUEL_IDLE_TICK_RATE" envDefault:"60"`

	SupportsRestart  bool          `env:"SNAKEDUEL_SUPPORTS_RESTART"   envDefault:"true"`
	ExitDelay        time.Duration `env:"SNAKEDUEL_EXIT_DELAY"         envDefault:"3s"`
	FoodAvoidsSnakes bool          `env:"SNAKEDUEL_FOOD_AVOIDS_SNAKES" envDefault:"false"`
	Seed             int64         `env:"SNAKEDUEL_SEED"               envDefault:"0"`

	SnakeColors     []Color  `env:"SNAKEDUEL_SNAKE_COLORS"     envDefault:"46,21"                envSeparator:","`
	FoodColor       Color    `env:"SNAKEDUEL_FOOD_COLOR"       envDefault:"196"`
	BackgroundColor Color    `env:"SNAKEDUEL_BACKGROUND_COLOR" envDefault:"0"`
	PlayerNames     []string `env:"SNAKEDUEL_PLAYER_NAMES"     envDefault:"Player 1,Player 2" envSeparator:","`
}

func DefaultConfig() Config {
	return Config{
		Width:           700,
		Height:          700,
		CellSize:        25,
		TickRate:        5,
		IdleTickRate:    60,
		SupportsRestart: true,
		ExitDelay:       3 * time.Second,
		SnakeColors:     []Color{"46", "21"},
		FoodColor:       "196",
		BackgroundColor: "0",
		PlayerNames:     []string{"Player 1", "Player 2"},
	}
}

// LoadConfig parses the environment on top of the defaults and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := NewGrid(c.Width, c.Height, c.CellSize); err != nil {
		return err
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate %d outside [%d, %d]", ErrInvalidConfig, c.TickRate, MinTickRate, MaxTickRate)
	}
	if c.IdleTickRate <= 0 || c.IdleTickRate > MaxTickRate {
		return fmt.Errorf("%w: idle tick rate %d outside [1, %d]", ErrInvalidConfig, c.IdleTickRate, MaxTickRate)
	}
	if c.ExitDelay < 0 {
		return fmt.Errorf("%w: negative exit delay %s", ErrInvalidConfig, c.ExitDelay)
	}
	if len(c.SnakeColors) != PlayerCount {
		return fmt.Errorf("%w: need %d snake colors, got %d", ErrInvalidConfig, PlayerCount, len(c.SnakeColors))
	}
	if len(c.PlayerNames) != PlayerCount {
		return fmt.Errorf("%w: need %d player names, got %d", ErrInvalidConfig, PlayerCount, len(c.PlayerNames))
	}
	return nil
}

// TickInterval is the wall-clock time between two ticks while playing.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) IdleInterval() time.Duration {
	return time.Second / time.Duration(c.IdleTickRate)
}
