package booking

import (
	"context"
	"time"

	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/dto"
)

type ListUpcomingShows struct {
	repo domain.Repository
}

func NewListUpcomingShows(repo domain.Repository) *ListUpcomingShows {
	return &ListUpcomingShows{repo: repo}
}

func (uc *ListUpcomingShows) Execute(
	ctx context.Context,
	now time.Time,
) ([]dto.ShowListDTO, error) {

	shows, err := uc.repo.ListShowsFrom(ctx, now)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ShowListDTO, 0, len(shows))
	for _, s := range shows {
		out = append(out, dto.ShowListDTO{
			ID:              s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
		})
	}

	return out, nil
}
