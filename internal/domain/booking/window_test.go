package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	booking "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/models"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return ts
}

func TestMatches(t *testing.T) {
	window := models.AvailableTime{
		Date:     "2024/06/01",
		TimeFrom: "09:00",
		TimeTo:   "12:00",
	}

	tests := []struct {
		name  string
		start string
		want  bool
	}{
		{"inside_window", "2024-06-01 10:30", true},
		{"exactly_time_from", "2024-06-01 09:00", true},
		{"exactly_time_to", "2024-06-01 12:00", true},
		{"one_minute_after", "2024-06-01 12:01", false},
		{"one_minute_before", "2024-06-01 08:59", false},
		{"right_time_wrong_date", "2024-06-02 10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Matches(window, mustParse(t, tt.start))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches_InvertedWindowNeverMatches(t *testing.T) {
	// time_from > time_to is stored as-is and simply matches nothing.
	window := models.AvailableTime{
		Date:     "2024/06/01",
		TimeFrom: "18:00",
		TimeTo:   "09:00",
	}

	for _, hm := range []string{"08:00", "12:00", "19:00"} {
		assert.False(t, booking.Matches(window, mustParse(t, "2024-06-01 "+hm)))
	}
}

func TestNormalize_EmptyBoundsCoverTheWholeDay(t *testing.T) {
	defaulted := models.AvailableTime{
		Date:     "2024/06/01",
		TimeFrom: booking.NormalizeTimeFrom(""),
		TimeTo:   booking.NormalizeTimeTo(""),
	}
	explicit := models.AvailableTime{
		Date:     "2024/06/01",
		TimeFrom: "00:00",
		TimeTo:   "23:59",
	}

	for _, hm := range []string{"00:00", "07:15", "12:00", "23:59"} {
		start := mustParse(t, "2024-06-01 "+hm)
		assert.Equal(t, booking.Matches(explicit, start), booking.Matches(defaulted, start))
		assert.True(t, booking.Matches(defaulted, start))
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	assert.Equal(t, "09:30", booking.NormalizeTimeFrom("09:30"))
	assert.Equal(t, "17:45", booking.NormalizeTimeTo("17:45"))
}

func TestAnyMatch(t *testing.T) {
	windows := []models.AvailableTime{
		{Date: "2024/06/01", TimeFrom: "09:00", TimeTo: "12:00"},
		{Date: "2024/06/01", TimeFrom: "15:00", TimeTo: "18:00"},
	}

	assert.True(t, booking.AnyMatch(windows, mustParse(t, "2024-06-01 16:00")))
	assert.False(t, booking.AnyMatch(windows, mustParse(t, "2024-06-01 13:00")))
	assert.False(t, booking.AnyMatch(nil, mustParse(t, "2024-06-01 10:00")))
}
