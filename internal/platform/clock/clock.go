// Package clock resolves wall time into the reference timezone used for
// opening-hours evaluation.
package clock

import (
	"fmt"
	"time"

	"food-finder-service/internal/domain"
)

// Zone is a Clock pinned to one fixed timezone. Every search run judges
// all venues against the same local instant, regardless of server zone.
type Zone struct {
	loc *time.Location
}

func NewZone(name string) (*Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &Zone{loc: loc}, nil
}

// Now returns the current local time as (day 0=Monday, minute of day).
func (z *Zone) Now() domain.LocalTime {
	now := time.Now().In(z.loc)
	return domain.LocalTime{
		// time.Weekday numbers Sunday as 0; the domain counts from Monday.
		Day:    (int(now.Weekday()) + 6) % 7,
		Minute: now.Hour()*60 + now.Minute(),
	}
}

// Fixed is a Clock frozen at one local time, for tests.
type Fixed struct {
	At domain.LocalTime
}

func (f Fixed) Now() domain.LocalTime { return f.At }
