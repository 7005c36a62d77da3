package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/models"
	booking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

func editInput(artistID uint, windows []booking.WindowChangeInput) booking.EditArtistInput {
	return booking.EditArtistInput{
		ArtistID:     artistID,
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		SeekingVenue: true,
		Genres:       []string{"Rock n Roll"},
		Availability: windows,
	}
}

func TestEditArtist_CreatesWindowsWithDefaults(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1, Name: "Guns N Petals"})
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	err := uc.Execute(context.Background(), editInput(1, []booking.WindowChangeInput{
		{Date: "2024/06/01", TimeFrom: "09:00", TimeTo: "12:00"},
		{Date: "2024/06/02"}, // empty bounds default to the whole day
	}))
	require.NoError(t, err)

	windows, err := repo.ListAvailableTimes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, "09:00", windows[0].TimeFrom)
	assert.Equal(t, "12:00", windows[0].TimeTo)
	assert.Equal(t, "00:00", windows[1].TimeFrom)
	assert.Equal(t, "23:59", windows[1].TimeTo)
}

func TestEditArtist_UpdateAndDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1})
	keep := repo.addWindow(1, "2024/06/01", "09:00", "12:00")
	drop := repo.addWindow(1, "2024/06/03", "10:00", "11:00")
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	err := uc.Execute(context.Background(), editInput(1, []booking.WindowChangeInput{
		{ID: keep, Date: "2024/06/01", TimeFrom: "14:00", TimeTo: "18:00"},
		{ID: drop, Delete: true},
	}))
	require.NoError(t, err)

	windows, _ := repo.ListAvailableTimes(context.Background(), 1)
	require.Len(t, windows, 1)
	assert.Equal(t, keep, windows[0].ID)
	assert.Equal(t, "14:00", windows[0].TimeFrom)
	assert.Equal(t, "18:00", windows[0].TimeTo)
}

func TestEditArtist_BadWindowIDRollsBackWholeBatch(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1, Name: "Before"})
	existing := repo.addWindow(1, "2024/06/01", "09:00", "12:00")
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	err := uc.Execute(context.Background(), editInput(1, []booking.WindowChangeInput{
		{Date: "2024/06/05", TimeFrom: "10:00", TimeTo: "11:00"},
		{ID: 999, Date: "2024/06/06", TimeFrom: "10:00", TimeTo: "11:00"},
	}))
	require.Error(t, err)

	// Nothing from the failed batch is visible: no new window, profile
	// untouched.
	windows, _ := repo.ListAvailableTimes(context.Background(), 1)
	require.Len(t, windows, 1)
	assert.Equal(t, existing, windows[0].ID)

	artist, _ := repo.GetArtistByID(context.Background(), 1)
	assert.Equal(t, "Before", artist.Name)
}

func TestEditArtist_RepeatedCreateBatchIsNotDeduplicated(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1})
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	in := editInput(1, []booking.WindowChangeInput{
		{Date: "2024/06/01", TimeFrom: "09:00", TimeTo: "12:00"},
	})

	require.NoError(t, uc.Execute(context.Background(), in))
	require.NoError(t, uc.Execute(context.Background(), in))

	windows, _ := repo.ListAvailableTimes(context.Background(), 1)
	assert.Len(t, windows, 2)
}

func TestEditArtist_UnknownArtist(t *testing.T) {
	repo := newFakeRepo()
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	err := uc.Execute(context.Background(), editInput(9, nil))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "artist_not_found"))
}

func TestEditArtist_ReplacesGenres(t *testing.T) {
	repo := newFakeRepo()
	repo.addArtist(models.Artist{ID: 1})
	repo.genres[1] = []string{"Jazz", "Blues"}
	uc := booking.NewEditArtist(repo, nil, newFakeCache())

	require.NoError(t, uc.Execute(context.Background(), editInput(1, nil)))

	assert.Equal(t, []string{"Rock n Roll"}, repo.genres[1])
}
