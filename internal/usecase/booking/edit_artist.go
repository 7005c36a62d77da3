package booking

import (
	"context"

	"github.com/fyyurhq/fyyur-api/internal/audit"
	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type WindowChangeInput struct {
	ID     uint   `json:"id"`
	Delete bool   `json:"delete"`
	Date   string `json:"date"`

	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
}

type EditArtistInput struct {
	ArtistID uint

	Name  string
	City  string
	State string
	Phone string

	ImageLink    string
	FacebookLink string
	Website      string

	SeekingVenue       bool
	SeekingDescription string

	Genres       []string
	Availability []WindowChangeInput
}

// ======================================================
// USE CASE
// ======================================================

// EditArtist applies an artist profile edit, the genre replacement and
// the availability batch as a single transaction.
type EditArtist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewEditArtist(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *EditArtist {
	return &EditArtist{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EditArtist) Execute(
	ctx context.Context,
	in EditArtistInput,
) error {

	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		return err
	}
	if artist == nil {
		return httperr.ErrBusiness("artist_not_found")
	}

	profile := domain.ArtistProfile{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}

	changes := make([]domain.WindowChange, 0, len(in.Availability))
	for _, w := range in.Availability {
		changes = append(changes, domain.WindowChange{
			ID:       w.ID,
			Delete:   w.Delete,
			Date:     w.Date,
			TimeFrom: domain.NormalizeTimeFrom(w.TimeFrom),
			TimeTo:   domain.NormalizeTimeTo(w.TimeTo),
		})
	}

	if err := uc.repo.SaveArtist(ctx, in.ArtistID, profile, in.Genres, changes); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, in.ArtistID)

	uc.audit.Dispatch(audit.Event{
		Action:   "artist_updated",
		Entity:   "artist",
		EntityID: &in.ArtistID,
		Metadata: map[string]any{"availability_changes": len(changes)},
	})

	return nil
}
