package config

import (
	"errors"
	"fmt"
	"time"
)

// Tier is a named difficulty preset.
type Tier struct {
	Name       string  `yaml:"name"`
	Gap        float64 `yaml:"gap"`         // Vertical opening of new obstacles
	IntervalMS int     `yaml:"interval_ms"` // Spawner re-arm interval
	Speed      float64 `yaml:"speed"`       // Leftward movement of new obstacles per frame
	AfterScore int     `yaml:"after_score"` // Active once score exceeds this; ignored for the first tier
}

// Interval returns the spawner interval as a duration.
func (t Tier) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// TierTable selects the active tier from the current score.
// Tiers are ordered from easiest to hardest with strictly increasing
// thresholds; the first tier is the fallback.
type TierTable struct {
	tiers []Tier
}

// NewTierTable validates tiers and builds a table.
func NewTierTable(tiers []Tier) (TierTable, error) {
	if len(tiers) == 0 {
		return TierTable{}, errors.New("tier table is empty")
	}
	for i, t := range tiers {
		if t.Name == "" {
			return TierTable{}, fmt.Errorf("tier %d has no name", i)
		}
		if t.Gap <= 0 || t.IntervalMS <= 0 || t.Speed <= 0 {
			return TierTable{}, fmt.Errorf("tier %q: gap, interval_ms and speed must be positive", t.Name)
		}
		if i > 1 && t.AfterScore <= tiers[i-1].AfterScore {
			return TierTable{}, fmt.Errorf("tier %q: after_score must exceed %d", t.Name, tiers[i-1].AfterScore)
		}
	}

	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return TierTable{tiers: cp}, nil
}

// Select returns the hardest tier whose threshold the score exceeds.
// A score exactly at a threshold stays in the lower tier.
func (t TierTable) Select(score int) Tier {
	for i := len(t.tiers) - 1; i > 0; i-- {
		if score > t.tiers[i].AfterScore {
			return t.tiers[i]
		}
	}
	return t.tiers[0]
}

// Base returns the tier active at score zero.
func (t TierTable) Base() Tier {
	return t.Select(0)
}

// Tiers returns a copy of the table rows, easiest first.
func (t TierTable) Tiers() []Tier {
	cp := make([]Tier, len(t.tiers))
	copy(cp, t.tiers)
	return cp
}
