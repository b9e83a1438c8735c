package domain

// WeeklyPeriod is one open/close span in a venue's weekly schedule.
// Days are numbered 0=Monday..6=Sunday. Minutes count from midnight
// (0..1439). A nil CloseMinute means the venue stays open for the rest
// of the day once OpenMinute has passed.
type WeeklyPeriod struct {
	Day         int
	OpenMinute  int
	CloseMinute *int
}

// OpenStatus classifies whether a venue is open right now.
type OpenStatus string

const (
	StatusOpen    OpenStatus = "Open"
	StatusClosed  OpenStatus = "Closed"
	StatusUnknown OpenStatus = "Unknown"
)

// LocalTime is an instant already resolved into the reference timezone:
// day of week (0=Monday) and minute of day (0..1439).
type LocalTime struct {
	Day    int
	Minute int
}

// EvaluateOpenStatus classifies a venue as open or closed at the given
// local time. An empty schedule yields Unknown. A period whose day
// matches is open when OpenMinute <= now < CloseMinute, or for the rest
// of the day when it has no close time.
//
// Spans that cross midnight (close before open) are not recognized; such
// a period never tests open. Minute values are compared as-is without
// range validation.
func EvaluateOpenStatus(periods []WeeklyPeriod, now LocalTime) OpenStatus {
	if len(periods) == 0 {
		return StatusUnknown
	}

	for _, p := range periods {
		if p.Day != now.Day {
			continue
		}

		if p.CloseMinute != nil {
			if p.OpenMinute <= now.Minute && now.Minute < *p.CloseMinute {
				return StatusOpen
			}
			continue
		}

		if now.Minute >= p.OpenMinute {
			return StatusOpen
		}
	}

	return StatusClosed
}
