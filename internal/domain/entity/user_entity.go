package entity

import (
	"time"
)

// User is the aggregate root for the registration domain.
// Password holds a bcrypt hash by the time the record is persisted.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
