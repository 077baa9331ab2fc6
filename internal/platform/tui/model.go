package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tweety-escape/internal/audio"
	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/platform/session"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

// statusTTL is how long a status message stays on the bottom row.
const statusTTL = 2 * time.Second

// Options carries the optional collaborators of a Model.
// Nil fields are replaced with silent defaults.
type Options struct {
	Journal   *storage.Journal
	Player    audio.Player
	Logger    *log.Logger
	SessionID string

	// CellWidth and CellHeight are the surface units covered by one column
	// and one row.
	CellWidth  float64
	CellHeight float64
}

// SurfaceConfig sizes cfg's surface to a cols×rows terminal.
// The surface is fixed for the lifetime of a Model.
func SurfaceConfig(cfg core.RuntimeConfig, cols, rows int, cellW, cellH float64) core.RuntimeConfig {
	cfg.SurfaceW = float64(cols) * cellW
	cfg.SurfaceH = float64(rows) * cellH
	return cfg
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       registry.Game
	canvas     *core.CellCanvas
	session    *session.Session
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	status     string
	statusLeft time.Duration
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// cfg must already carry the surface size (see SurfaceConfig).
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 10
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 20
	}
	cols := int(cfg.SurfaceW / opts.CellWidth)
	rows := int(cfg.SurfaceH / opts.CellHeight)
	screen := core.NewScreen(cols, rows)

	sess := session.New(game.ID(), session.Options{
		Journal:   opts.Journal,
		Player:    opts.Player,
		Logger:    opts.Logger,
		SessionID: opts.SessionID,
	})

	game.Reset(cfg)

	return Model{
		game:       game,
		canvas:     core.NewCellCanvas(screen, cfg.SurfaceW, cfg.SurfaceH, opts.CellWidth, opts.CellHeight),
		session:    sess,
		logger:     sess.Logger(),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		width:      cols,
		height:     rows,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scoreboard == nil {
			m.keys.MapMouseToFrame(msg, m.canvas, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Copy):
		m.copyFrame()
		return m, nil
	case key.Matches(msg, keys.Scoreboard):
		if m.gameState.Mode == core.ModeMenu || m.gameState.GameOver {
			sb := NewScoreboardModel(m.session.Journal(), m.game.ID(), m.game.Title(), m.session.ID(), m.width, m.height)
			m.scoreboard = &sb
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleResize keeps the surface fixed and only resizes the cell buffer;
// whatever no longer fits is clipped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.canvas.Screen().Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick steps the simulation once and dispatches its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.session.Dispatch(result)

	if m.statusLeft > 0 {
		m.statusLeft -= m.config.FrameInterval()
		if m.statusLeft <= 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusLeft = statusTTL
}

// frameText renders the current frame and returns it without colors.
func (m *Model) frameText() string {
	m.game.Render(m.canvas)
	return m.canvas.Screen().String()
}

// saveScreenshot saves the current frame under the XDG state directory.
func (m *Model) saveScreenshot() {
	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	path, err := xdg.StateFile(filepath.Join("tweety", "screenshots", name))
	if err == nil {
		err = os.WriteFile(path, []byte(m.frameText()), 0o600)
	}
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.setStatus("screenshot failed: %v", err)
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved %s", path)
}

// copyFrame puts the current frame on the system clipboard.
func (m *Model) copyFrame() {
	if err := clipboard.WriteAll(m.frameText()); err != nil {
		m.logger.Warn("could not copy frame", "error", err)
		m.setStatus("copy failed: %v", err)
		return
	}
	m.setStatus("frame copied to clipboard")
}

// State returns the game state observed after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Session returns the session that records this model's attempts.
func (m Model) Session() *session.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.canvas)
	drawStatus(m.canvas.Screen(), m.status)
	return RenderScreen(m.canvas.Screen())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
