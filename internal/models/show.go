package models

import "time"

type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`

	VenueID uint  `gorm:"not null" json:"venue_id"`
	Venue   Venue `json:"venue"`

	ArtistID uint   `gorm:"not null" json:"artist_id"`
	Artist   Artist `json:"artist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Show) TableName() string { return "shows" }
