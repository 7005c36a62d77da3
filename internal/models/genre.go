package models

type ArtistGenre struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	GenreName string `json:"genre_name"`
	ArtistID  uint   `gorm:"not null;index" json:"artist_id"`
}

func (ArtistGenre) TableName() string { return "artist_genres" }

type VenueGenre struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	GenreName string `json:"genre_name"`
	VenueID   uint   `gorm:"not null;index" json:"venue_id"`
}

func (VenueGenre) TableName() string { return "venue_genres" }
