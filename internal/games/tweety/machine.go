package tweety

import "github.com/vovakirdan/tweety-escape/internal/core"

// Jump handles the Space key.
//
//	ready     -> playing, music starts and the frame loop is armed
//	playing   -> flap
//	game over -> new attempt, same as Play Again
//
// It does nothing in the menu or on the instructions screen.
func (g *Game) Jump() {
	switch g.mode {
	case ModeReady:
		g.cue(core.CueMusic)
		g.setMode(ModePlaying)
		g.sched.After(0, g.frameTask)
	case ModePlaying:
		g.cue(core.CueFlap)
		g.actor.Flap()
	case ModeGameOver:
		g.playAgain()
	}
}

// Click handles a pointer press at p in surface units.
// Returns the button that was hit, ButtonNone if the click was a no-op.
func (g *Game) Click(p core.Point) Button {
	b := HitTest(g.mode, g.w, g.h, p)
	switch b {
	case ButtonStart:
		g.cue(core.CueButton)
		g.startAttempt()
	case ButtonInstruction:
		g.cue(core.CueButton)
		g.setMode(ModeHowToPlay)
	case ButtonBack:
		g.cue(core.CueButton)
		g.setMode(ModeMenu)
	case ButtonPlayAgain:
		g.playAgain()
	case ButtonMainMenu:
		g.cue(core.CueButton)
		g.mainMenu()
	}
	return b
}

// playAgain commits the best score and starts a new attempt.
func (g *Game) playAgain() {
	g.cue(core.CueButton)
	g.commitBest()
	g.startAttempt()
}

// startAttempt clears the field, counts an attempt and arms the spawner.
// Timers of the previous attempt are invalidated.
func (g *Game) startAttempt() {
	g.clearAttempt()
	g.actor.Place(g.h)
	g.attempts++
	g.setMode(ModeReady)
	g.sched.After(0, g.spawnTask)
}

// mainMenu abandons the current attempt without counting a new one.
func (g *Game) mainMenu() {
	g.commitBest()
	g.clearAttempt()
	g.setMode(ModeMenu)
}

func (g *Game) clearAttempt() {
	g.sched.Bump()
	g.score = 0
	g.obstacles = g.obstacles[:0]
	g.tier = g.tiers.Select(0)
	g.newBest = false
	g.bannerShown = false
	g.beatBest = false
}

// commitBest raises the best score to the current score. Idempotent.
func (g *Game) commitBest() {
	if g.score > g.best {
		g.best = g.score
	}
}

// endAttempt enters game over. The frame loop stops because frameTask
// does not re-arm; the pending spawn check is dropped when it fires.
func (g *Game) endAttempt() {
	g.cue(core.CueDeath)
	g.beatBest = g.score > g.best
	g.commitBest()
	g.setMode(ModeGameOver)
}

// spawnTask runs one spawn check and re-arms itself at the interval of the
// tier active now. A check still queued at game over does nothing, so the
// game over scene stays as it was.
func (g *Game) spawnTask() {
	if g.mode == ModeGameOver {
		return
	}
	if o, ok := g.spawner.Decide(g.obstacles, g.tier, g.w, g.h); ok {
		g.obstacles = append(g.obstacles, o)
	}
	g.sched.After(g.tier.Interval(), g.spawnTask)
}

// frameTask advances the live scene by one frame and re-arms itself for the
// next frame until the attempt ends.
func (g *Game) frameTask() {
	if g.mode != ModePlaying {
		return
	}

	over := false

	// Reverse order keeps indexes valid across removal.
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := &g.obstacles[i]
		o.Advance()

		if Intersects(g.actor, *o, g.h) {
			over = true
		}

		if Passed(g.actor, *o) {
			o.Scored = true
			g.score++
			g.cue(core.CuePoint)
			g.tier = g.tiers.Select(g.score)
		}

		if Offscreen(*o) {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
		}
	}

	if g.actor.Advance(g.h) {
		over = true
	}

	if g.score > g.best && g.attempts > 1 && !g.bannerShown {
		g.raiseBanner()
	}

	if over {
		g.endAttempt()
		return
	}
	g.sched.After(g.frame, g.frameTask)
}

// raiseBanner shows the NEW BEST banner and schedules it to clear.
// Once per attempt; a reset before the delay drops the clear.
func (g *Game) raiseBanner() {
	g.newBest = true
	g.bannerShown = true
	g.sched.After(g.cfg.Timing.NewBestBanner(), func() {
		g.newBest = false
	})
}
