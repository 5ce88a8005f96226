package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

type UpdateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}
