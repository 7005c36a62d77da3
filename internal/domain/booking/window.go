package booking

import (
	"time"

	"github.com/fyyurhq/fyyur-api/internal/models"
)

const (
	DateLayout = "2006/01/02"
	TimeLayout = "15:04"

	// Defaults applied when a window is submitted with an empty bound.
	DayStart = "00:00"
	DayEnd   = "23:59"
)

// NormalizeTimeFrom fills an empty lower bound with the start of day.
func NormalizeTimeFrom(hm string) string {
	if hm == "" {
		return DayStart
	}
	return hm
}

// NormalizeTimeTo fills an empty upper bound with the end of day.
func NormalizeTimeTo(hm string) string {
	if hm == "" {
		return DayEnd
	}
	return hm
}

// Matches reports whether start falls inside the window. Both bounds are
// inclusive: a show starting exactly at time_from or time_to is accepted.
// A window with time_from > time_to never matches; that shape is not
// rejected on write, it is just unusable.
func Matches(w models.AvailableTime, start time.Time) bool {
	if w.Date != start.Format(DateLayout) {
		return false
	}
	hm := start.Format(TimeLayout)
	return w.TimeFrom <= hm && hm <= w.TimeTo
}

// AnyMatch reports whether at least one of the artist's windows covers start.
func AnyMatch(windows []models.AvailableTime, start time.Time) bool {
	for _, w := range windows {
		if Matches(w, start) {
			return true
		}
	}
	return false
}
