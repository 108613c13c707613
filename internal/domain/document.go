package domain

import "time"

// Document metadata of a special-booking attachment
// The binary itself lives in external object storage; this system keeps
// only the stable reference returned by the storage collaborator
type Document struct {
	ID            int64
	ReservationID int64
	FileName      string
	ContentType   string
	SizeBytes     int64
	StorageKey    string
	URL           string
	CreatedAt     time.Time
}
