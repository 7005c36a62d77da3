package booking_test

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/models"
	booking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

// fakeRepo is an in-memory booking.Repository. SaveArtist validates the
// whole availability batch before touching state, so a failing change
// leaves the store exactly as it was, same as the transactional gorm
// implementation.
type fakeRepo struct {
	artists map[uint]models.Artist
	venues  map[uint]models.Venue
	genres  map[uint][]string
	windows map[uint]models.AvailableTime
	shows   []models.Show

	nextWindowID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		artists:      map[uint]models.Artist{},
		venues:       map[uint]models.Venue{},
		genres:       map[uint][]string{},
		windows:      map[uint]models.AvailableTime{},
		nextWindowID: 1,
	}
}

func (r *fakeRepo) addArtist(a models.Artist) {
	r.artists[a.ID] = a
}

func (r *fakeRepo) addVenue(v models.Venue) {
	r.venues[v.ID] = v
}

func (r *fakeRepo) addWindow(artistID uint, date, from, to string) uint {
	id := r.nextWindowID
	r.nextWindowID++
	r.windows[id] = models.AvailableTime{
		ID:       id,
		ArtistID: artistID,
		Date:     date,
		TimeFrom: from,
		TimeTo:   to,
	}
	return id
}

func (r *fakeRepo) GetArtistByID(_ context.Context, id uint) (*models.Artist, error) {
	a, ok := r.artists[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeRepo) SaveArtist(
	_ context.Context,
	artistID uint,
	profile domain.ArtistProfile,
	genres []string,
	changes []domain.WindowChange,
) error {

	if _, ok := r.artists[artistID]; !ok {
		return gorm.ErrRecordNotFound
	}

	// Validate first; nothing is applied when any change is bad.
	for _, ch := range changes {
		if ch.ID == 0 {
			continue
		}
		w, ok := r.windows[ch.ID]
		if !ok || w.ArtistID != artistID {
			return gorm.ErrRecordNotFound
		}
	}

	a := r.artists[artistID]
	a.Name = profile.Name
	a.City = profile.City
	a.State = profile.State
	a.Phone = profile.Phone
	a.ImageLink = profile.ImageLink
	a.FacebookLink = profile.FacebookLink
	a.Website = profile.Website
	a.SeekingVenue = profile.SeekingVenue
	a.SeekingDescription = profile.SeekingDescription
	r.artists[artistID] = a

	r.genres[artistID] = append([]string(nil), genres...)

	for _, ch := range changes {
		switch {
		case ch.ID == 0:
			r.addWindow(artistID, ch.Date, ch.TimeFrom, ch.TimeTo)
		case ch.Delete:
			delete(r.windows, ch.ID)
		default:
			w := r.windows[ch.ID]
			w.Date = ch.Date
			w.TimeFrom = ch.TimeFrom
			w.TimeTo = ch.TimeTo
			r.windows[ch.ID] = w
		}
	}

	return nil
}

func (r *fakeRepo) DeleteArtist(_ context.Context, id uint) (bool, error) {
	if _, ok := r.artists[id]; !ok {
		return false, nil
	}
	delete(r.artists, id)
	delete(r.genres, id)
	for wid, w := range r.windows {
		if w.ArtistID == id {
			delete(r.windows, wid)
		}
	}
	return true, nil
}

func (r *fakeRepo) ListAvailableTimes(_ context.Context, artistID uint) ([]models.AvailableTime, error) {
	var out []models.AvailableTime
	for _, w := range r.windows {
		if w.ArtistID == artistID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].TimeFrom < out[j].TimeFrom
	})
	return out, nil
}

func (r *fakeRepo) GetVenueByID(_ context.Context, id uint) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *fakeRepo) CreateShow(_ context.Context, show *models.Show) error {
	show.ID = uint(len(r.shows) + 1)
	r.shows = append(r.shows, *show)
	return nil
}

func (r *fakeRepo) ListShowsFrom(_ context.Context, from time.Time) ([]models.Show, error) {
	var out []models.Show
	for _, s := range r.shows {
		if s.StartTime.After(from) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache is an in-memory booking.AvailabilityCache. It keeps the
// serialized form so cached reads go through the same round trip as the
// redis-backed cache, and records which artists were invalidated.
type fakeCache struct {
	entries     map[uint][]byte
	invalidated []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uint][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, artistID uint, out any) bool {
	raw, ok := c.entries[artistID]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *fakeCache) Set(_ context.Context, artistID uint, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[artistID] = raw
}

func (c *fakeCache) Invalidate(_ context.Context, artistID uint) {
	delete(c.entries, artistID)
	c.invalidated = append(c.invalidated, artistID)
}

var _ booking.AvailabilityCache = (*fakeCache)(nil)
