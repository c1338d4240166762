// Package biztime holds the business timezone. Timestamps are stored in UTC;
// the business timezone only decides calendar boundaries such as the year
// embedded in ticket numbers.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone, UTC when Init was never called.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// YearOf returns the calendar year of t in the business timezone.
func YearOf(t time.Time) int {
	return t.In(Location()).Year()
}

// Clock supplies the current instant. Domain services take a Clock so tests can pin time.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time {
	return NowUTC()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// FromMillis converts unix milliseconds to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
