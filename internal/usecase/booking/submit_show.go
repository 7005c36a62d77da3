package booking

import (
	"context"
	"time"

	"github.com/fyyurhq/fyyur-api/internal/audit"
	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitShowInput struct {
	ArtistID uint
	VenueID  uint

	// "YYYY-MM-DD HH:MM"
	StartTime string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitShow books a show against an artist's declared availability.
// Rejections are business errors; the caller re-presents the form with
// the submitted values.
type SubmitShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitShow {
	return &SubmitShow{
		repo:  repo,
		audit: audit,
	}
}

const startTimeLayout = "2006-01-02 15:04"

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitShow) Execute(
	ctx context.Context,
	in SubmitShowInput,
) (*models.Show, error) {

	start, err := time.Parse(startTimeLayout, in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_time")
	}

	// A missing artist and one not seeking a venue are the same outcome
	// for the caller: nothing is bookable.
	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist == nil || !artist.SeekingVenue {
		return nil, httperr.ErrBusiness("artist_not_accepting")
	}

	windows, err := uc.repo.ListAvailableTimes(ctx, in.ArtistID)
	if err != nil {
		return nil, err
	}
	if !domain.AnyMatch(windows, start) {
		uc.audit.Dispatch(audit.Event{
			Action:   "show_rejected",
			Entity:   "show",
			Metadata: map[string]any{"artist_id": in.ArtistID, "start_time": in.StartTime},
		})
		return nil, httperr.ErrBusiness("artist_not_available")
	}

	venue, err := uc.repo.GetVenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, httperr.ErrBusiness("venue_not_found")
	}

	show := &models.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: start,
	}

	if err := uc.repo.CreateShow(ctx, show); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "show_created",
		Entity:   "show",
		EntityID: &show.ID,
	})

	return show, nil
}
