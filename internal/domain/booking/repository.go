package booking

import (
	"context"
	"time"

	"github.com/fyyurhq/fyyur-api/internal/models"
)

// Repository is the persistence boundary of the booking core. Lookups
// return (nil, nil) when the id does not resolve, so every caller has to
// handle the missing case explicitly.
type Repository interface {
	// -------- Artist --------
	GetArtistByID(
		ctx context.Context,
		id uint,
	) (*models.Artist, error)

	// SaveArtist applies profile fields, the full genre replacement and
	// the availability batch in one transaction. A change referencing an
	// unknown window id fails the whole batch.
	SaveArtist(
		ctx context.Context,
		artistID uint,
		profile ArtistProfile,
		genres []string,
		changes []WindowChange,
	) error

	// DeleteArtist removes the artist row; genres, shows and availability
	// windows go with it via the FK cascade. Returns false when the id
	// does not resolve.
	DeleteArtist(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Availability --------
	ListAvailableTimes(
		ctx context.Context,
		artistID uint,
	) ([]models.AvailableTime, error)

	// -------- Venue --------
	GetVenueByID(
		ctx context.Context,
		id uint,
	) (*models.Venue, error)

	// -------- Show --------
	CreateShow(
		ctx context.Context,
		show *models.Show,
	) error

	ListShowsFrom(
		ctx context.Context,
		from time.Time,
	) ([]models.Show, error)
}
