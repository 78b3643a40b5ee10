package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/Mshel/snakeduel/internal/ui"
	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// The alt screen owns stdout, so logs only go to a file when one is asked for.
type runnerConfig struct {
	LogFile  string `env:"SNAKEDUEL_LOG_FILE"`
	LogLevel string `env:"SNAKEDUEL_LOG_LEVEL" envDefault:"info"`
}

func newLogger(cfg runnerConfig) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "snakeduel",
	})
	return logger, func() { f.Close() }, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var runCfg runnerConfig
	if err := env.Parse(&runCfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	logger, closeLog, err := newLogger(runCfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Error("Invalid game config", "error", err)
		return err
	}

	p := tea.NewProgram(ui.NewControllerModel(cfg, logger, 0, 0), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if controller, ok := final.(ui.ControllerModel); ok && controller.Err() != nil {
		logger.Error("Game ended with an error", "error", controller.Err())
		return controller.Err()
	}
	return nil
}
