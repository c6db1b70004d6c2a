package timezone

import "time"

// Clock supplies the current instant. Temporal booking classification is
// computed against an injected Clock so it stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
