package models

import "time"

// AvailableTime is one availability window an artist has declared.
// Date is stored as "YYYY/MM/DD", TimeFrom/TimeTo as "HH:MM" with
// inclusive bounds. Zero-padded strings keep lexicographic order equal
// to chronological order, so sorting and matching compare them directly.
type AvailableTime struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"not null;index" json:"artist_id"`

	Date     string `gorm:"size:10;not null" json:"date"`
	TimeFrom string `gorm:"size:5;not null" json:"time_from"`
	TimeTo   string `gorm:"size:5;not null" json:"time_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AvailableTime) TableName() string { return "artist_available_times" }
