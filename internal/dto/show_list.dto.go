package dto

import "time"

type ShowListDTO struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowRefDTO is the past/upcoming show entry on artist and venue pages.
type ShowRefDTO struct {
	VenueID        uint   `json:"venue_id,omitempty"`
	VenueName      string `json:"venue_name,omitempty"`
	VenueImageLink string `json:"venue_image_link,omitempty"`

	ArtistID        uint   `json:"artist_id,omitempty"`
	ArtistName      string `json:"artist_name,omitempty"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`

	StartTime time.Time `json:"start_time"`
}
