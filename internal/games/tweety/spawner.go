package tweety

import (
	"math/rand"

	"github.com/vovakirdan/tweety-escape/internal/config"
)

// Spawner decides when new obstacles appear and where their gap sits.
type Spawner struct {
	rng        *rand.Rand
	width      float64
	minSpacing float64
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, cfg config.ObstacleConfig) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		width:      cfg.Width,
		minSpacing: cfg.MinSpacing,
	}
}

// Reseed restarts the RNG sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Decide runs one spawn check against the current collection.
// An empty collection always spawns; otherwise the newest obstacle must have
// travelled more than tier.Gap plus the minimum spacing from the right edge.
func (s *Spawner) Decide(obstacles []Obstacle, tier config.Tier, surfaceW, surfaceH float64) (Obstacle, bool) {
	if n := len(obstacles); n > 0 {
		last := obstacles[n-1]
		if surfaceW-last.X <= tier.Gap+s.minSpacing {
			return Obstacle{}, false
		}
	}
	return s.spawn(tier, surfaceW, surfaceH), true
}

// spawn builds an obstacle at the right edge with a uniformly placed gap.
func (s *Spawner) spawn(tier config.Tier, surfaceW, surfaceH float64) Obstacle {
	top := 0.0
	if span := surfaceH/2 - tier.Gap; span > 0 {
		top = s.rng.Float64() * span
	}
	return Obstacle{
		X:      surfaceW,
		Width:  s.width,
		Top:    top,
		Bottom: surfaceH - (top + tier.Gap),
		Gap:    tier.Gap,
		Speed:  tier.Speed,
		Scored: false,
	}
}
