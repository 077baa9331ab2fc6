package config

import (
	_ "embed"
)

//go:embed defaults/tweety.yaml
var defaultTweetyYAML []byte

// DefaultTweetyConfig returns the default Tweety Escape configuration.
func DefaultTweetyConfig() TweetyConfig {
	return TweetyConfig{
		Surface: SurfaceConfig{
			CellWidth:    10,
			CellHeight:   20,
			WindowWidth:  1152,
			WindowHeight: 648,
		},
		Actor: ActorConfig{
			X:         350,
			Width:     40,
			Height:    40,
			Gravity:   0.5,
			Lift:      -8,
			ClimbTilt: -0.2,
			DiveTilt:  0.2,
			UnplacedY: -50,
		},
		Obstacles: ObstacleConfig{
			Width:      80,
			MinSpacing: 100,
		},
		Tiers: []Tier{
			{Name: "beginner", Gap: 150, IntervalMS: 2000, Speed: 2},
			{Name: "medium", Gap: 130, IntervalMS: 1500, Speed: 4, AfterScore: 10},
			{Name: "hard", Gap: 100, IntervalMS: 1000, Speed: 6, AfterScore: 20},
		},
		Timing: TimingConfig{
			NewBestBannerMS: 1000,
		},
	}
}
