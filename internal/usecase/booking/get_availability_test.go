package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyurhq/fyyur-api/internal/models"
	booking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

func TestGetAvailability_UnknownArtist(t *testing.T) {
	repo := newFakeRepo()
	uc := booking.NewGetAvailability(repo, newFakeCache())

	result, err := uc.Execute(context.Background(), booking.GetAvailabilityInput{ArtistID: 9})
	require.NoError(t, err)

	assert.Nil(t, result.Artist)
	assert.Empty(t, result.Windows)
}

func TestGetAvailability_NotSeekingVenueHidesStoredWindows(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1, Name: "Guns N Petals", SeekingVenue: false})
	repo.addWindow(1, "2024/06/01", "09:00", "12:00")
	repo.addWindow(1, "2024/06/02", "09:00", "12:00")
	uc := booking.NewGetAvailability(repo, newFakeCache())

	result, err := uc.Execute(context.Background(), booking.GetAvailabilityInput{ArtistID: 1})
	require.NoError(t, err)

	require.NotNil(t, result.Artist)
	assert.False(t, result.Artist.SeekingVenue)
	assert.Empty(t, result.Windows)
}

func TestGetAvailability_WindowsOrderedByDateThenTime(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1, Name: "Guns N Petals", SeekingVenue: true})
	repo.addWindow(1, "2024/06/02", "08:00", "10:00")
	repo.addWindow(1, "2024/06/01", "15:00", "18:00")
	repo.addWindow(1, "2024/06/01", "09:00", "12:00")
	uc := booking.NewGetAvailability(repo, newFakeCache())

	result, err := uc.Execute(context.Background(), booking.GetAvailabilityInput{ArtistID: 1})
	require.NoError(t, err)

	require.Len(t, result.Windows, 3)
	assert.Equal(t, "2024/06/01", result.Windows[0].Date)
	assert.Equal(t, "09:00", result.Windows[0].TimeFrom)
	assert.Equal(t, "2024/06/01", result.Windows[1].Date)
	assert.Equal(t, "15:00", result.Windows[1].TimeFrom)
	assert.Equal(t, "2024/06/02", result.Windows[2].Date)

	for _, w := range result.Windows {
		assert.Equal(t, uint(1), w.ArtistID)
	}
}

func TestGetAvailability_SeekingVenueOnlyFlagHasNoEffect(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1, Name: "Guns N Petals", SeekingVenue: true})
	repo.addWindow(1, "2024/06/01", "09:00", "12:00")
	uc := booking.NewGetAvailability(repo, newFakeCache())

	plain, err := uc.Execute(context.Background(), booking.GetAvailabilityInput{ArtistID: 1})
	require.NoError(t, err)

	filtered, err := uc.Execute(context.Background(), booking.GetAvailabilityInput{
		ArtistID:         1,
		SeekingVenueOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, plain, filtered)
}
