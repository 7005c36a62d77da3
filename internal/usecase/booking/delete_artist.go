package booking

import (
	"context"

	"github.com/fyyurhq/fyyur-api/internal/audit"
	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

// DeleteArtist removes an artist and drops its cached availability, so
// the cache never outlives the row.
type DeleteArtist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewDeleteArtist(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *DeleteArtist {
	return &DeleteArtist{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *DeleteArtist) Execute(
	ctx context.Context,
	artistID uint,
) error {

	deleted, err := uc.repo.DeleteArtist(ctx, artistID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("artist_not_found")
	}

	uc.cache.Invalidate(ctx, artistID)

	uc.audit.Dispatch(audit.Event{
		Action:   "artist_deleted",
		Entity:   "artist",
		EntityID: &artistID,
	})

	return nil
}
