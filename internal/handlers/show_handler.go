package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/httpresp"
	ucBooking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ShowHandler struct {
	submitShow *ucBooking.SubmitShow
	listShows  *ucBooking.ListUpcomingShows
}

func NewShowHandler(
	submitShow *ucBooking.SubmitShow,
	listShows *ucBooking.ListUpcomingShows,
) *ShowHandler {
	return &ShowHandler{
		submitShow: submitShow,
		listShows:  listShows,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitShowRequest struct {
	ArtistID  uint   `json:"artist_id" binding:"required"`
	VenueID   uint   `json:"venue_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.listShows.Execute(c.Request.Context(), time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_list_shows", "Could not list shows.")
		return
	}

	httpresp.List(c, shows)
}

// ======================================================
// CREATE
// ======================================================

var rejectionMessages = map[string]string{
	"invalid_start_time":   "Invalid start time; expected YYYY-MM-DD HH:MM.",
	"artist_not_accepting": "Artist is not accepting bookings.",
	"artist_not_available": "Artist is not available at the requested time.",
	"venue_not_found":      "Venue not found.",
}

func (h *ShowHandler) Create(c *gin.Context) {
	var req SubmitShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid show data.")
		return
	}

	show, err := h.submitShow.Execute(c.Request.Context(), ucBooking.SubmitShowInput{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
	})

	if err != nil {
		// Rule rejections carry the submitted form back so the client
		// re-presents it pre-filled.
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.Rejected(c, code, rejectionMessages[code], req)
			return
		}

		logrus.WithError(err).Error("show create failed")
		httperr.Internal(c, "failed_to_create_show", "An error occurred. Show could not be listed.")
		return
	}

	httpresp.Created(c, gin.H{
		"show":    show,
		"message": "Show was successfully listed!",
	})
}
