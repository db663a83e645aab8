package application

import "time"

// PropertyRequest is the inbound shape for create and full update. Generated
// fields (id, timestamps) are never accepted here.
type PropertyRequest struct {
	Title       string  `json:"title" binding:"required,min=5,max=100"`
	Location    string  `json:"location" binding:"required,min=3,max=100"`
	Price       float64 `json:"price" binding:"required,gte=100000,lte=100000000"`
	ImageURL    string  `json:"imageUrl" binding:"required,imageurl,max=500"`
	Description string  `json:"description" binding:"required,min=10,max=1000"`
}

// PropertyResponse is the outbound projection of a stored listing.
type PropertyResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SignupRequest is the inbound shape for user registration.
type SignupRequest struct {
	FirstName   string `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string `json:"lastName" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phonedigits,min=10,max=20"`
	Password    string `json:"password" binding:"required,min=6,max=100"`
	Type        string `json:"type" binding:"required,max=20"`
}

// UserResponse is the public projection of a stored user. It deliberately has
// no password field, so the hash can never round-trip to callers.
type UserResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Type        string `json:"type"`
}
