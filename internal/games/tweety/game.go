// Package tweety implements Tweety Escape, a Flappy Bird-style game.
// The player keeps a falling bird airborne and steers it through gaps
// between trees that scroll in from the right.
//
// All timing runs on a core.Scheduler advanced one frame interval per Step,
// so the simulation is deterministic for a given seed and input sequence.
package tweety

import (
	"time"

	"github.com/vovakirdan/tweety-escape/internal/config"
	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/registry"
)

// gameConfig is the configuration used by New, set via CLI.
var gameConfig = config.DefaultTweetyConfig()

// SetConfig sets the configuration used for games created by the registry.
func SetConfig(cfg config.TweetyConfig) {
	gameConfig = cfg
}

// Game implements the Tweety Escape game logic.
type Game struct {
	cfg   config.TweetyConfig
	tiers config.TierTable

	w, h    float64       // Surface size in surface units
	frame   time.Duration // Simulated time per Step
	sched   *core.Scheduler
	spawner *Spawner

	mode      Mode
	actor     Actor
	obstacles []Obstacle
	tier      config.Tier

	score    int
	best     int
	attempts int

	newBest     bool // HUD banner visible
	bannerShown bool // Banner already raised this attempt
	beatBest    bool // Attempt ended above the previous best

	cues        []core.Cue
	transitions []core.Transition
}

// New creates a game with the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates a game with an explicit configuration.
// An invalid tier table falls back to the default one.
func NewWithConfig(cfg config.TweetyConfig) *Game {
	tiers, err := cfg.TierTable()
	if err != nil {
		cfg.Tiers = config.DefaultTweetyConfig().Tiers
		tiers, _ = cfg.TierTable()
	}
	g := &Game{
		cfg:   cfg,
		tiers: tiers,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tweety"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tweety Escape"
}

// Reset returns the game to its process-start state: main menu, no attempts,
// no best score, actor off the surface.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.w = rt.SurfaceW
	g.h = rt.SurfaceH
	g.frame = rt.FrameInterval()
	g.sched = core.NewScheduler()
	g.spawner = NewSpawner(rt.Seed, g.cfg.Obstacles)

	g.mode = ModeMenu
	g.actor = NewActor(g.cfg.Actor)
	g.obstacles = g.obstacles[:0]
	g.tier = g.tiers.Base()

	g.score = 0
	g.best = 0
	g.attempts = 0
	g.newBest = false
	g.bannerShown = false
	g.beatBest = false

	g.cues = g.cues[:0]
	g.transitions = g.transitions[:0]
}

// Step applies one frame of input, then advances the clock by one frame
// interval and runs every timer that became due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionJump) {
		g.Jump()
	}
	for _, p := range in.Clicks {
		g.Click(p)
	}
	g.sched.Advance(g.frame)
	return g.flush()
}

// flush returns the step result and clears the per-step event buffers.
func (g *Game) flush() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.cues) > 0 {
		res.Cues = append([]core.Cue(nil), g.cues...)
	}
	if len(g.transitions) > 0 {
		res.Transitions = append([]core.Transition(nil), g.transitions...)
	}
	g.cues = g.cues[:0]
	g.transitions = g.transitions[:0]
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:      g.mode.Name(),
		Tier:      g.tier.Name,
		Score:     g.score,
		BestScore: g.best,
		Attempts:  g.attempts,
		GameOver:  g.mode == ModeGameOver,
	}
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Actor returns a copy of the actor.
func (g *Game) Actor() Actor {
	return g.actor
}

// Obstacles returns a copy of the obstacle collection in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}

// Tier returns the active difficulty tier.
func (g *Game) Tier() config.Tier {
	return g.tier
}

// Surface returns the surface size in surface units.
func (g *Game) Surface() (w, h float64) {
	return g.w, g.h
}

// Now returns the simulated time since Reset.
func (g *Game) Now() time.Duration {
	return g.sched.Now()
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) setMode(m Mode) {
	if m == g.mode {
		return
	}
	g.transitions = append(g.transitions, core.Transition{From: g.mode.Name(), To: m.Name()})
	g.mode = m
}

// Register the game with the registry
func init() {
	registry.Register("tweety", func() registry.Game {
		return New()
	})
}
