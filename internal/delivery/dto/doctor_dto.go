package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=200"`
	Email         string `json:"email" validate:"required,email"`
	LicenseNumber string `json:"license_number" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	SpecialtyID   int    `json:"specialty_id" validate:"required,min=1"`
}

type UpdateDoctorRequest struct {
	Name          string `json:"name" validate:"omitempty,min=2,max=200"`
	Email         string `json:"email" validate:"omitempty,email"`
	LicenseNumber string `json:"license_number" validate:"omitempty,max=200"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	SpecialtyID   int    `json:"specialty_id" validate:"omitempty,min=1"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	LicenseNumber string             `json:"license_number"`
	Phone         string             `json:"phone,omitempty"`
	SpecialtyID   int                `json:"specialty_id"`
	Specialty     *SpecialtyResponse `json:"specialty,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
