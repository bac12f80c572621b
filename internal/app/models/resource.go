package models

import "time"

// Resource is a support resource listing entry. LastUpdated is refreshed
// on every mutation.
type Resource struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
}
