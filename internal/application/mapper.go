package application

import "github.com/estatia/estatia/internal/domain/entity"

// Mapping between persisted records and DTO shapes. Pure functions; inbound
// conversions leave store-assigned fields (id, timestamps) at their zero value.

func PropertyFromRequest(req PropertyRequest) *entity.Property {
	return &entity.Property{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
}

// ApplyPropertyRequest overwrites all five mutable fields on an existing record.
func ApplyPropertyRequest(p *entity.Property, req PropertyRequest) {
	p.Title = req.Title
	p.Location = req.Location
	p.Price = req.Price
	p.ImageURL = req.ImageURL
	p.Description = req.Description
}

func ToPropertyResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPropertyResponses(props []entity.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for i := range props {
		out = append(out, ToPropertyResponse(&props[i]))
	}
	return out
}

// UserFromSignup maps a signup request to a user record. The password field is
// carried as-is; hashing happens in the service before persisting.
func UserFromSignup(req SignupRequest) *entity.User {
	return &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Type:        req.Type,
	}
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Type:        u.Type,
	}
}
