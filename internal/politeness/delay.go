package politeness

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayProfile defines a named delay configuration.
type DelayProfile string

const (
	ProfileCautious   DelayProfile = "cautious"
	ProfileNormal     DelayProfile = "normal"
	ProfileAggressive DelayProfile = "aggressive"
)

// Delay adds randomized jitter between page requests so a wishlist
// walk does not hit the store at a fixed cadence.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// NewDelay creates a delay generator for the given profile.
func NewDelay(profile DelayProfile) *Delay {
	switch profile {
	case ProfileCautious:
		return &Delay{Min: 2 * time.Second, Max: 5 * time.Second}
	case ProfileAggressive:
		return &Delay{Min: 100 * time.Millisecond, Max: 500 * time.Millisecond}
	default: // normal
		return &Delay{Min: 500 * time.Millisecond, Max: 2 * time.Second}
	}
}

// Wait sleeps for a random duration within the configured range.
func (d *Delay) Wait(ctx context.Context) error {
	wait := d.Min
	if d.Max > d.Min {
		wait += time.Duration(rand.Int64N(int64(d.Max - d.Min)))
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
