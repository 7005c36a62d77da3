package models

import "time"

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	City    string `gorm:"size:120;not null" json:"city"`
	State   string `gorm:"size:120;not null" json:"state"`
	Address string `gorm:"size:120;not null" json:"address"`
	Phone   string `gorm:"size:120;not null" json:"phone"`

	ImageLink    string `gorm:"size:500" json:"image_link"`
	FacebookLink string `gorm:"size:120" json:"facebook_link"`
	Website      string `gorm:"size:120" json:"website"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`

	Genres []VenueGenre `gorm:"constraint:OnDelete:CASCADE;" json:"genres,omitempty"`
	Shows  []Show       `gorm:"constraint:OnDelete:CASCADE;" json:"shows,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string { return "venues" }
