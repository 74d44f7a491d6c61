package model

import "time"

// Item is a catalogued item as persisted and as returned to clients.
// Description is a pointer so that a missing description serializes as
// null rather than an empty string.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImageMime   string    `json:"image_mime,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
