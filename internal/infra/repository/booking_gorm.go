package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/fyyurhq/fyyur-api/internal/domain/booking"
	"github.com/fyyurhq/fyyur-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Artist
// --------------------------------------------------

func (r *BookingGormRepository) GetArtistByID(
	ctx context.Context,
	id uint,
) (*models.Artist, error) {

	var artist models.Artist
	err := r.db.WithContext(ctx).First(&artist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// SaveArtist commits a full artist edit as one transaction: profile
// columns, genre replacement, and the availability batch. gorm rolls
// back and releases the connection on any returned error.
func (r *BookingGormRepository) SaveArtist(
	ctx context.Context,
	artistID uint,
	profile domain.ArtistProfile,
	genres []string,
	changes []domain.WindowChange,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Artist{}).
			Where("id = ?", artistID).
			Updates(map[string]any{
				"name":                profile.Name,
				"city":                profile.City,
				"state":               profile.State,
				"phone":               profile.Phone,
				"image_link":          profile.ImageLink,
				"facebook_link":       profile.FacebookLink,
				"website":             profile.Website,
				"seeking_venue":       profile.SeekingVenue,
				"seeking_description": profile.SeekingDescription,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Genres are replaced wholesale on every edit.
		if err := tx.Where("artist_id = ?", artistID).
			Delete(&models.ArtistGenre{}).Error; err != nil {
			return err
		}
		for _, name := range genres {
			g := models.ArtistGenre{ArtistID: artistID, GenreName: name}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
		}

		for _, ch := range changes {
			if err := applyWindowChange(tx, artistID, ch); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) DeleteArtist(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Artist{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func applyWindowChange(tx *gorm.DB, artistID uint, ch domain.WindowChange) error {

	switch {
	case ch.ID == 0:
		w := models.AvailableTime{
			ArtistID: artistID,
			Date:     ch.Date,
			TimeFrom: ch.TimeFrom,
			TimeTo:   ch.TimeTo,
		}
		return tx.Create(&w).Error

	case ch.Delete:
		res := tx.Where("id = ? AND artist_id = ?", ch.ID, artistID).
			Delete(&models.AvailableTime{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil

	default:
		res := tx.Model(&models.AvailableTime{}).
			Where("id = ? AND artist_id = ?", ch.ID, artistID).
			Updates(map[string]any{
				"date":      ch.Date,
				"time_from": ch.TimeFrom,
				"time_to":   ch.TimeTo,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailableTimes(
	ctx context.Context,
	artistID uint,
) ([]models.AvailableTime, error) {

	var windows []models.AvailableTime
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("date ASC, time_from ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

// --------------------------------------------------
// Venue
// --------------------------------------------------

func (r *BookingGormRepository) GetVenueByID(
	ctx context.Context,
	id uint,
) (*models.Venue, error) {

	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// --------------------------------------------------
// Show
// --------------------------------------------------

func (r *BookingGormRepository) CreateShow(
	ctx context.Context,
	show *models.Show,
) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *BookingGormRepository) ListShowsFrom(
	ctx context.Context,
	from time.Time,
) ([]models.Show, error) {

	var shows []models.Show
	if err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Where("start_time > ?", from).
		Order("start_time ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}

	return shows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
