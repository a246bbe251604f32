package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
	"github.com/ormakov/hexpop/internal/game"
	"github.com/ormakov/hexpop/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hexpop/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// GameConfig is the shared game configuration for all sessions.
	GameConfig config.HexpopConfig

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.hexpop/scores.db",
		GameConfig:  config.Default(),
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server. Every session gets its own game
// instance sized to the session PTY; scores land in the shared store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexpop-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hexpop", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewModel(game.New(s.config.GameConfig), s.store, rt)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
