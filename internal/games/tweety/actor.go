package tweety

import (
	"github.com/vovakirdan/tweety-escape/internal/config"
	"github.com/vovakirdan/tweety-escape/internal/core"
)

// Actor is the falling bird. Only the vertical axis moves.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64

	gravity   float64
	lift      float64
	climbTilt float64
	diveTilt  float64
}

// NewActor creates an actor at its off-surface starting position.
func NewActor(cfg config.ActorConfig) Actor {
	return Actor{
		X:         cfg.X,
		Y:         cfg.UnplacedY,
		Width:     cfg.Width,
		Height:    cfg.Height,
		gravity:   cfg.Gravity,
		lift:      cfg.Lift,
		climbTilt: cfg.ClimbTilt,
		diveTilt:  cfg.DiveTilt,
	}
}

// Place moves the actor to mid-surface at rest.
func (a *Actor) Place(surfaceH float64) {
	a.Y = surfaceH / 2
	a.Velocity = 0
}

// Advance integrates one frame of gravity.
// Reports true when the actor was clamped at the floor or ceiling.
func (a *Actor) Advance(surfaceH float64) bool {
	a.Velocity += a.gravity
	a.Y += a.Velocity

	if a.Y+a.Height > surfaceH {
		a.Y = surfaceH - a.Height
		a.Velocity = 0
		return true
	}
	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
		return true
	}
	return false
}

// Flap applies the lift impulse.
func (a *Actor) Flap() {
	a.Velocity = a.lift
}

// Rotation returns the display tilt: climbing while moving up, diving otherwise.
func (a Actor) Rotation() float64 {
	if a.Velocity < 0 {
		return a.climbTilt
	}
	return a.diveTilt
}

// Bounds returns the actor's bounding box.
func (a Actor) Bounds() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}
