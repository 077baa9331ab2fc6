package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated under the XDG data directory.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// GameID selects the registered game served to every session.
	GameID string

	// Runtime is the template for every session; the surface is sized
	// from the session's PTY.
	Runtime core.RuntimeConfig

	CellWidth  float64
	CellHeight float64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		GameID:      "tweety",
		Runtime:     core.DefaultConfig(),
		CellWidth:   10,
		CellHeight:  20,
	}
}

// SSHServer wraps a Wish SSH server. Every session runs its own game and
// shares one in-memory attempt journal.
type SSHServer struct {
	config  SSHServerConfig
	title   string
	server  *ssh.Server
	journal *storage.Journal
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tweety-ssh",
		})
	}
	title, err := gameTitle(cfg.GameID)
	if err != nil {
		return nil, err
	}

	journal, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open attempt journal", "error", err)
		journal = nil
	}

	srv := &SSHServer{
		config:  cfg,
		title:   title,
		journal: journal,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath, err = xdg.DataFile(filepath.Join("tweety", "host_key"))
		if err != nil {
			srv.closeJournal()
			return nil, fmt.Errorf("tui: cannot resolve host key path: %w", err)
		}
	} else if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeJournal()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeJournal()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameTitle looks id up among the registered games.
func gameTitle(id string) (string, error) {
	games := registry.List()
	ids := make([]string, 0, len(games))
	for _, g := range games {
		if g.ID == id {
			return g.Title, nil
		}
		ids = append(ids, g.ID)
	}
	return "", fmt.Errorf("tui: unknown game %q (registered: %s)", id, strings.Join(ids, ", "))
}

// teaHandler creates a Bubble Tea program for each SSH session.
// The surface is sized from the PTY at connect time.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "error", err)
		return nil, nil
	}

	cfg := SurfaceConfig(s.config.Runtime, pty.Window.Width, pty.Window.Height,
		s.config.CellWidth, s.config.CellHeight)
	cfg.Seed = time.Now().UnixNano()

	sessionID := storage.NewSessionID()
	s.logger.Debug("session surface",
		"session", sessionID,
		"cols", pty.Window.Width,
		"rows", pty.Window.Height,
		"width", cfg.SurfaceW,
		"height", cfg.SurfaceH,
	)

	model := NewModel(game, cfg, Options{
		Journal:    s.journal,
		Logger:     s.logger.With("user", sshSession.User()),
		SessionID:  sessionID,
		CellWidth:  s.config.CellWidth,
		CellHeight: s.config.CellHeight,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
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
	s.logger.Info("starting SSH server",
		"address", s.config.Address,
		"game", s.config.GameID,
		"title", s.title,
	)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.closeJournal()
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server, then logs the attempt totals and
// drops the journal.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)

	if s.journal != nil {
		if sum, sumErr := s.journal.GameSummary(s.config.GameID); sumErr == nil {
			s.logger.Info("served attempts",
				"attempts", sum.Attempts,
				"best", sum.Best,
				"average", fmt.Sprintf("%.1f", sum.Average),
			)
		}
	}
	s.closeJournal()

	return err
}

func (s *SSHServer) closeJournal() {
	if s.journal == nil {
		return
	}
	if err := s.journal.Close(); err != nil {
		s.logger.Warn("could not close attempt journal", "error", err)
	}
	s.journal = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
