package models

import "time"

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	City  string `gorm:"size:120;not null" json:"city"`
	State string `gorm:"size:120;not null" json:"state"`
	Phone string `gorm:"size:120;not null" json:"phone"`

	ImageLink    string `gorm:"size:500" json:"image_link"`
	FacebookLink string `gorm:"size:120" json:"facebook_link"`
	Website      string `gorm:"size:120" json:"website"`

	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`

	Genres         []ArtistGenre   `gorm:"constraint:OnDelete:CASCADE;" json:"genres,omitempty"`
	AvailableTimes []AvailableTime `gorm:"constraint:OnDelete:CASCADE;" json:"available_times,omitempty"`
	Shows          []Show          `gorm:"constraint:OnDelete:CASCADE;" json:"shows,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Artist) TableName() string { return "artists" }
