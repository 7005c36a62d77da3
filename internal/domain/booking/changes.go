package booking

// WindowChange is one entry of an availability batch. ID zero means a new
// window; Delete marks an existing window for removal; anything else is an
// in-place update. The whole batch applies inside one transaction or not
// at all.
type WindowChange struct {
	ID     uint
	Delete bool

	Date     string
	TimeFrom string
	TimeTo   string
}

// ArtistProfile carries the editable artist fields of an edit batch.
type ArtistProfile struct {
	Name  string
	City  string
	State string
	Phone string

	ImageLink    string
	FacebookLink string
	Website      string

	SeekingVenue       bool
	SeekingDescription string
}
