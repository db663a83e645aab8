package entity

import (
	"time"
)

// Property is the aggregate root for the listing domain.
// ID and both timestamps are assigned by the store; services never set them.
type Property struct {
	ID          int64
	Title       string
	Location    string
	Price       float64
	ImageURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
