// Package config provides YAML-based game configuration loading and
// difficulty tier selection.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TweetyConfig contains all configuration for Tweety Escape.
type TweetyConfig struct {
	Surface   SurfaceConfig  `yaml:"surface"`
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Tiers     []Tier         `yaml:"tiers"`
	Timing    TimingConfig   `yaml:"timing"`
}

// SurfaceConfig defines how the drawing surface maps onto each platform.
type SurfaceConfig struct {
	CellWidth    float64 `yaml:"cell_width"`    // Surface units per terminal column
	CellHeight   float64 `yaml:"cell_height"`   // Surface units per terminal row
	WindowWidth  int     `yaml:"window_width"`  // Window surface width in pixels
	WindowHeight int     `yaml:"window_height"` // Window surface height in pixels
}

// ActorConfig defines the falling actor.
type ActorConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gravity   float64 `yaml:"gravity"`    // Added to velocity every frame
	Lift      float64 `yaml:"lift"`       // Velocity set by a flap (negative = up)
	ClimbTilt float64 `yaml:"climb_tilt"` // Display angle while moving up, radians
	DiveTilt  float64 `yaml:"dive_tilt"`  // Display angle otherwise, radians
	UnplacedY float64 `yaml:"unplaced_y"` // Off-surface y before the first start
}

// ObstacleConfig defines the tree obstacles.
type ObstacleConfig struct {
	Width      float64 `yaml:"width"`
	MinSpacing float64 `yaml:"min_spacing"` // Added to the tier gap for the spawn spacing floor
}

// TimingConfig holds real-time durations of cosmetic effects.
type TimingConfig struct {
	NewBestBannerMS int `yaml:"new_best_banner_ms"`
}

// NewBestBanner returns the banner display duration.
func (t TimingConfig) NewBestBanner() time.Duration {
	return time.Duration(t.NewBestBannerMS) * time.Millisecond
}

// Validate reports the first inconsistency in the configuration.
func (c TweetyConfig) Validate() error {
	if c.Surface.CellWidth <= 0 || c.Surface.CellHeight <= 0 {
		return errors.New("config: surface cell size must be positive")
	}
	if c.Surface.WindowWidth <= 0 || c.Surface.WindowHeight <= 0 {
		return errors.New("config: window size must be positive")
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return errors.New("config: actor size must be positive")
	}
	if c.Obstacles.Width <= 0 {
		return errors.New("config: obstacle width must be positive")
	}
	if c.Obstacles.MinSpacing < 0 {
		return errors.New("config: obstacle min_spacing must not be negative")
	}
	if c.Timing.NewBestBannerMS < 0 {
		return errors.New("config: new_best_banner_ms must not be negative")
	}
	if _, err := NewTierTable(c.Tiers); err != nil {
		return err
	}
	return nil
}

// TierTable builds the difficulty table described by the configuration.
func (c TweetyConfig) TierTable() (TierTable, error) {
	t, err := NewTierTable(c.Tiers)
	if err != nil {
		return TierTable{}, fmt.Errorf("config: %w", err)
	}
	return t, nil
}
