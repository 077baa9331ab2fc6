// Package window runs the game in a desktop window through Ebiten.
// The window's logical size is the surface size, so one pixel is one
// surface unit and Ebiten scales the frame when the window is resized.
package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tweety-escape/internal/audio"
	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/platform/session"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

// Options carries the optional collaborators of a Window.
type Options struct {
	Journal   *storage.Journal
	Player    audio.Player
	Logger    *log.Logger
	SessionID string
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game    registry.Game
	session *session.Session
	cfg     core.RuntimeConfig
	canvas  *ImageCanvas
	frame   core.InputFrame
}

// New creates a window for game and resets the game for cfg.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	game.Reset(cfg)
	return &Window{
		game: game,
		session: session.New(game.ID(), session.Options{
			Journal:   opts.Journal,
			Player:    opts.Player,
			Logger:    opts.Logger,
			SessionID: opts.SessionID,
		}),
		cfg:    cfg,
		canvas: NewImageCanvas(cfg.SurfaceW, cfg.SurfaceH),
		frame:  core.NewInputFrame(),
	}
}

// Session returns the session that records this window's attempts.
func (w *Window) Session() *session.Session {
	return w.session
}

// Update polls input and steps the simulation once.
func (w *Window) Update() error {
	if pollInput(&w.frame) {
		return ebiten.Termination
	}

	result := w.game.Step(w.frame)
	w.frame.Clear()
	w.session.Dispatch(result)
	return nil
}

// Draw renders the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Target(screen)
	w.game.Render(w.canvas)
}

// Layout keeps the logical screen at the surface size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.SurfaceW), int(w.cfg.SurfaceH)
}

// pollInput collects this tick's presses into frame.
// Returns true when the player asked to close the window.
func pollInput(frame *core.InputFrame) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		frame.Set(core.ActionJump)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(core.Point{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		frame.Click(core.Point{X: float64(x), Y: float64(y)})
	}
	return false
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(int(cfg.SurfaceW), int(cfg.SurfaceH))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(w)
}
