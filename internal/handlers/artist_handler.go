package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fyyurhq/fyyur-api/internal/dto"
	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/httpresp"
	"github.com/fyyurhq/fyyur-api/internal/models"
	ucBooking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ArtistHandler struct {
	db           *gorm.DB
	editArtist   *ucBooking.EditArtist
	deleteArtist *ucBooking.DeleteArtist
}

func NewArtistHandler(
	db *gorm.DB,
	editArtist *ucBooking.EditArtist,
	deleteArtist *ucBooking.DeleteArtist,
) *ArtistHandler {
	return &ArtistHandler{
		db:           db,
		editArtist:   editArtist,
		deleteArtist: deleteArtist,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city" binding:"required"`
	State string `json:"state" binding:"required"`
	Phone string `json:"phone" binding:"required"`

	ImageLink    string `json:"image_link"`
	FacebookLink string `json:"facebook_link"`
	Website      string `json:"website"`

	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`

	Genres []string `json:"genres"`
}

type EditArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city" binding:"required"`
	State string `json:"state" binding:"required"`
	Phone string `json:"phone" binding:"required"`

	ImageLink    string `json:"image_link"`
	FacebookLink string `json:"facebook_link"`
	Website      string `json:"website"`

	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`

	Genres       []string                      `json:"genres"`
	Availability []ucBooking.WindowChangeInput `json:"availability"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

type artistListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *ArtistHandler) List(c *gin.Context) {
	var artists []artistListItem
	if err := h.db.Model(&models.Artist{}).
		Order("name ASC").
		Find(&artists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_artists", "Could not list artists.")
		return
	}

	httpresp.List(c, artists)
}

type artistSearchItem struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

func (h *ArtistHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid search request.")
		return
	}

	var artists []models.Artist
	if err := h.db.
		Where("name ILIKE ?", "%"+req.SearchTerm+"%").
		Find(&artists).Error; err != nil {
		httperr.Internal(c, "failed_to_search_artists", "Could not search artists.")
		return
	}

	upcoming, err := h.upcomingShowCounts(time.Now())
	if err != nil {
		logrus.WithError(err).Error("artist upcoming show count failed")
		httperr.Internal(c, "failed_to_search_artists", "Could not search artists.")
		return
	}

	results := make([]artistSearchItem, 0, len(artists))
	for _, a := range artists {
		results = append(results, artistSearchItem{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: upcoming[a.ID],
		})
	}

	httpresp.Search(c, results)
}

// upcomingShowCounts groups future shows per artist in one query.
func (h *ArtistHandler) upcomingShowCounts(now time.Time) (map[uint]int64, error) {
	type row struct {
		ArtistID uint
		Total    int64
	}

	var rows []row
	if err := h.db.Model(&models.Show{}).
		Select("artist_id, COUNT(*) AS total").
		Where("start_time > ?", now).
		Group("artist_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.ArtistID] = r.Total
	}
	return counts, nil
}

// ======================================================
// DETAIL
// ======================================================

func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_artist_id", "Invalid artist id.")
		return
	}

	var artist models.Artist
	if err := h.db.Preload("Genres").First(&artist, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "artist_not_found", "Artist not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_artist", "Could not load artist.")
		return
	}

	genres := make([]string, 0, len(artist.Genres))
	for _, g := range artist.Genres {
		genres = append(genres, g.GenreName)
	}

	now := time.Now()
	past := h.showsForArtist(id, "shows.start_time <= ?", now)
	upcoming := h.showsForArtist(id, "shows.start_time > ?", now)

	httpresp.OK(c, gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"genres":               genres,
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"website":              artist.Website,
		"facebook_link":        artist.FacebookLink,
		"seeking_venue":        artist.SeekingVenue,
		"seeking_description":  artist.SeekingDescription,
		"image_link":           artist.ImageLink,
		"past_shows":           past,
		"upcoming_shows":       upcoming,
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func (h *ArtistHandler) showsForArtist(artistID uint, cond string, at time.Time) []dto.ShowRefDTO {
	var refs []dto.ShowRefDTO
	h.db.Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Where(cond, at).
		Scan(&refs)

	if refs == nil {
		refs = []dto.ShowRefDTO{}
	}
	return refs
}

// ======================================================
// CREATE
// ======================================================

func (h *ArtistHandler) Create(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid artist data.")
		return
	}

	artist := models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
	for _, name := range req.Genres {
		artist.Genres = append(artist.Genres, models.ArtistGenre{GenreName: name})
	}

	if err := h.db.Create(&artist).Error; err != nil {
		logrus.WithError(err).Error("artist create failed")
		httperr.Internal(c, "failed_to_create_artist",
			"An error occurred. Artist "+req.Name+" could not be listed.")
		return
	}

	httpresp.Created(c, gin.H{
		"id":      artist.ID,
		"message": "Artist " + artist.Name + " was successfully listed!",
	})
}

// ======================================================
// UPDATE (atomic profile + genres + availability batch)
// ======================================================

func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_artist_id", "Invalid artist id.")
		return
	}

	var req EditArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid artist data.")
		return
	}

	err := h.editArtist.Execute(c.Request.Context(), ucBooking.EditArtistInput{
		ArtistID:           id,
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
		Genres:             req.Genres,
		Availability:       req.Availability,
	})

	if err != nil {
		if httperr.IsBusiness(err, "artist_not_found") {
			httperr.NotFound(c, "artist_not_found", "Artist not found.")
			return
		}

		// The whole batch rolled back; the cause stays in the log.
		logrus.WithError(err).WithField("artist_id", id).Error("artist edit failed")
		httperr.Internal(c, "failed_to_update_artist",
			"An error occurred. Artist "+req.Name+" could not be updated.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":      id,
		"message": "Artist " + req.Name + " was successfully updated!",
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_artist_id", "Invalid artist id.")
		return
	}

	if err := h.deleteArtist.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "artist_not_found") {
			httperr.NotFound(c, "artist_not_found", "Artist not found.")
			return
		}

		logrus.WithError(err).WithField("artist_id", id).Error("artist delete failed")
		httperr.Internal(c, "failed_to_delete_artist", "An error occurred. Artist could not be deleted.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Artist was successfully deleted."})
}
