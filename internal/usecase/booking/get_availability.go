package booking

import (
	"context"

	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
)

// ======================================================
// OUTPUT
// ======================================================

type ArtistSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	SeekingVenue bool   `json:"seeking_venue"`
}

type AvailabilityEntry struct {
	ID       uint   `json:"id"`
	ArtistID uint   `json:"artist_id"`
	Date     string `json:"date"`
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
}

type AvailabilityResult struct {
	Artist  *ArtistSummary      `json:"artist"`
	Windows []AvailabilityEntry `json:"windows"`
}

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	ArtistID uint

	// Accepted for the collection-filter form; once a single artist is
	// resolved it changes nothing about the returned windows.
	SeekingVenueOnly bool
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*AvailabilityResult, error) {

	var cached AvailabilityResult
	if uc.cache.Get(ctx, in.ArtistID, &cached) {
		return &cached, nil
	}

	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return &AvailabilityResult{Windows: []AvailabilityEntry{}}, nil
	}

	result := &AvailabilityResult{
		Artist: &ArtistSummary{
			ID:           artist.ID,
			Name:         artist.Name,
			SeekingVenue: artist.SeekingVenue,
		},
		Windows: []AvailabilityEntry{},
	}

	// An artist that is not seeking a venue exposes no windows, whatever
	// is stored.
	if !artist.SeekingVenue {
		return result, nil
	}

	windows, err := uc.repo.ListAvailableTimes(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}

	for _, w := range windows {
		result.Windows = append(result.Windows, AvailabilityEntry{
			ID:       w.ID,
			ArtistID: w.ArtistID,
			Date:     w.Date,
			TimeFrom: w.TimeFrom,
			TimeTo:   w.TimeTo,
		})
	}

	uc.cache.Set(ctx, in.ArtistID, result)

	return result, nil
}
