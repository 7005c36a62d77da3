package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fyyurhq/fyyur-api/internal/httperr"
	"github.com/fyyurhq/fyyur-api/internal/httpresp"
	ucBooking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *ucBooking.GetAvailability
}

func NewAvailabilityHandler(getAvailability *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: getAvailability}
}

// Get returns the artist summary and ordered availability windows.
// Unknown artist id yields a null artist with an empty window list.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_artist_id", "Invalid artist id.")
		return
	}

	result, err := h.getAvailability.Execute(c.Request.Context(), ucBooking.GetAvailabilityInput{
		ArtistID:         id,
		SeekingVenueOnly: c.Query("seeking_venue_only") == "true",
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	httpresp.OK(c, result)
}
