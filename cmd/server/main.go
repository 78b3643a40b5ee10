package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/Mshel/snakeduel/internal/ui"
	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

type serverConfig struct {
	Host                string `env:"SNAKEDUEL_HOST"                   envDefault:"0.0.0.0"`
	Port                int    `env:"SNAKEDUEL_PORT"                   envDefault:"6996"`
	HostKeyPath         string `env:"SNAKEDUEL_PRIVATE_KEY_PATH"       envDefault:".ssh/id_ed25519"`
	MaxConnectionsPerIP int    `env:"SNAKEDUEL_MAX_CONNECTIONS_PER_IP" envDefault:"2"`
	LogLevel            string `env:"SNAKEDUEL_LOG_LEVEL"              envDefault:"info"`
}

func main() {
	var srvCfg serverConfig
	if err := env.Parse(&srvCfg); err != nil {
		log.Fatal("Could not read server config", "error", err)
	}
	level, err := log.ParseLevel(srvCfg.LogLevel)
	if err != nil {
		log.Fatal("Invalid log level", "level", srvCfg.LogLevel, "error", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	// fail before listening rather than on the first session
	gameCfg, err := game.LoadConfig()
	if err != nil {
		log.Fatal("Invalid game config", "error", err)
	}

	limiter := newConnectionLimiter(srvCfg.MaxConnectionsPerIP)
	addr := net.JoinHostPort(srvCfg.Host, strconv.Itoa(srvCfg.Port))

	sshServer, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(srvCfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler(gameCfg)),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.middleware,
		),
	)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", addr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

// viewHandler gives every session its own duel on a shared keyboard.
func viewHandler(cfg game.Config) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()
		logger := log.With("user", s.User(), "ip", remoteIP(s))
		controller := ui.NewControllerModel(cfg, logger, pty.Window.Width, pty.Window.Height)
		return controller, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
