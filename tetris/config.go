package tetris

import "time"

const (
	// DefaultFastFall is the gravity interval while an accelerated soft drop is active.
	DefaultFastFall = 50 * time.Millisecond
	// DefaultSoftDropDelay is how long the soft drop must be held before it accelerates.
	DefaultSoftDropDelay = 1000 * time.Millisecond
)

// Config tunes the soft drop. The level curve and scoring table are fixed.
type Config struct {
	// FastFall replaces the level interval once a soft drop has been held for
	// SoftDropDelay.
	FastFall time.Duration
	// SoftDropDelay is the continuous hold time before FastFall applies.
	SoftDropDelay time.Duration
}

// DefaultConfig returns the standard timings.
func DefaultConfig() Config {
	return Config{
		FastFall:      DefaultFastFall,
		SoftDropDelay: DefaultSoftDropDelay,
	}
}

func (c Config) withDefaults() Config {
	if c.FastFall <= 0 {
		c.FastFall = DefaultFastFall
	}
	if c.SoftDropDelay <= 0 {
		c.SoftDropDelay = DefaultSoftDropDelay
	}
	return c
}
