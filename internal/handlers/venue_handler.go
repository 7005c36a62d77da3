package handlers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fyyurhq/fyyur-api/internal/dto"
	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/httpresp"
	"github.com/fyyurhq/fyyur-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type VenueHandler struct {
	db *gorm.DB
}

func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type VenueRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`

	ImageLink    string `json:"image_link"`
	FacebookLink string `json:"facebook_link"`
	Website      string `json:"website"`

	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`

	Genres []string `json:"genres"`
}

// ======================================================
// LIST (grouped by city/state)
// ======================================================

type venueListItem struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type venueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []venueListItem `json:"venues"`
}

func (h *VenueHandler) List(c *gin.Context) {
	var venues []models.Venue
	if err := h.db.Order("city ASC, state ASC, name ASC").Find(&venues).Error; err != nil {
		httperr.Internal(c, "failed_to_list_venues", "Could not list venues.")
		return
	}

	upcoming, err := h.upcomingShowCounts(time.Now())
	if err != nil {
		logrus.WithError(err).Error("venue upcoming show count failed")
		httperr.Internal(c, "failed_to_list_venues", "Could not list venues.")
		return
	}

	areas := map[string]*venueArea{}
	for _, v := range venues {
		key := v.City + "-" + v.State
		area, exists := areas[key]
		if !exists {
			area = &venueArea{City: v.City, State: v.State}
			areas[key] = area
		}
		area.Venues = append(area.Venues, venueListItem{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}

	keys := make([]string, 0, len(areas))
	for k := range areas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]venueArea, 0, len(keys))
	for _, k := range keys {
		out = append(out, *areas[k])
	}

	httpresp.List(c, out)
}

// ======================================================
// SEARCH
// ======================================================

func (h *VenueHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid search request.")
		return
	}

	var venues []models.Venue
	if err := h.db.
		Where("name ILIKE ?", "%"+req.SearchTerm+"%").
		Find(&venues).Error; err != nil {
		httperr.Internal(c, "failed_to_search_venues", "Could not search venues.")
		return
	}

	upcoming, err := h.upcomingShowCounts(time.Now())
	if err != nil {
		logrus.WithError(err).Error("venue upcoming show count failed")
		httperr.Internal(c, "failed_to_search_venues", "Could not search venues.")
		return
	}

	results := make([]venueListItem, 0, len(venues))
	for _, v := range venues {
		results = append(results, venueListItem{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}

	httpresp.Search(c, results)
}

// upcomingShowCounts groups future shows per venue in one query.
func (h *VenueHandler) upcomingShowCounts(now time.Time) (map[uint]int64, error) {
	type row struct {
		VenueID uint
		Total   int64
	}

	var rows []row
	if err := h.db.Model(&models.Show{}).
		Select("venue_id, COUNT(*) AS total").
		Where("start_time > ?", now).
		Group("venue_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.VenueID] = r.Total
	}
	return counts, nil
}

// ======================================================
// DETAIL
// ======================================================

func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_venue_id", "Invalid venue id.")
		return
	}

	var venue models.Venue
	if err := h.db.Preload("Genres").First(&venue, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Venue not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_venue", "Could not load venue.")
		return
	}

	genres := make([]string, 0, len(venue.Genres))
	for _, g := range venue.Genres {
		genres = append(genres, g.GenreName)
	}

	now := time.Now()
	past := h.showsForVenue(id, "shows.start_time <= ?", now)
	upcoming := h.showsForVenue(id, "shows.start_time > ?", now)

	httpresp.OK(c, gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"genres":               genres,
		"address":              venue.Address,
		"city":                 venue.City,
		"state":                venue.State,
		"phone":                venue.Phone,
		"website":              venue.Website,
		"facebook_link":        venue.FacebookLink,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"image_link":           venue.ImageLink,
		"past_shows":           past,
		"upcoming_shows":       upcoming,
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func (h *VenueHandler) showsForVenue(venueID uint, cond string, at time.Time) []dto.ShowRefDTO {
	var refs []dto.ShowRefDTO
	h.db.Model(&models.Show{}).
		Select("shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
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

func (h *VenueHandler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid venue data.")
		return
	}

	venue := models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
	for _, name := range req.Genres {
		venue.Genres = append(venue.Genres, models.VenueGenre{GenreName: name})
	}

	if err := h.db.Create(&venue).Error; err != nil {
		logrus.WithError(err).Error("venue create failed")
		httperr.Internal(c, "failed_to_create_venue",
			"An error occurred. Venue "+req.Name+" could not be listed.")
		return
	}

	httpresp.Created(c, gin.H{
		"id":      venue.ID,
		"message": "Venue " + venue.Name + " was successfully listed!",
	})
}

// ======================================================
// UPDATE (genres replaced in the same transaction)
// ======================================================

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_venue_id", "Invalid venue id.")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid venue data.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Venue{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":                req.Name,
				"city":                req.City,
				"state":               req.State,
				"address":             req.Address,
				"phone":               req.Phone,
				"image_link":          req.ImageLink,
				"facebook_link":       req.FacebookLink,
				"website":             req.Website,
				"seeking_talent":      req.SeekingTalent,
				"seeking_description": req.SeekingDescription,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("venue_id = ?", id).Delete(&models.VenueGenre{}).Error; err != nil {
			return err
		}
		for _, name := range req.Genres {
			g := models.VenueGenre{VenueID: id, GenreName: name}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Venue not found.")
			return
		}
		logrus.WithError(err).WithField("venue_id", id).Error("venue edit failed")
		httperr.Internal(c, "failed_to_update_venue",
			"An error occurred. Venue "+req.Name+" could not be updated.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":      id,
		"message": "Venue " + req.Name + " was successfully updated!",
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_venue_id", "Invalid venue id.")
		return
	}

	res := h.db.Delete(&models.Venue{}, id)
	if res.Error != nil {
		logrus.WithError(res.Error).Error("venue delete failed")
		httperr.Internal(c, "failed_to_delete_venue", "An error occurred. Venue could not be deleted.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "venue_not_found", "Venue not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Venue was successfully deleted."})
}
