package models

import "time"

// AdvertisementDB represents an advertisement record in the database.
type AdvertisementDB struct {
	ID             int64     `db:"id"`               // Primary key
	Header         string    `db:"header"`           // Unique header
	Description    string    `db:"description"`      // Unbounded text
	DateOfCreation time.Time `db:"date_of_creation"` // Set once at creation
	Owner          int64     `db:"owner"`            // users.id of the owner
}

// AdvertisementPatch is the allow-listed set of fields a PATCH may overwrite.
// Owner is not re-validated against users on update.
type AdvertisementPatch struct {
	Header      *string
	Description *string
	Owner       *int64
}
