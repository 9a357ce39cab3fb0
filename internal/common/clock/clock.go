package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/scoretracker/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// UnixMilli returns the clock's current time as milliseconds since the epoch,
// the timestamp unit used by history entries and chunk metadata.
func UnixMilli(c Clock) int64 {
	if c == nil {
		return time.Now().UnixMilli()
	}
	return c.Now().UnixMilli()
}
