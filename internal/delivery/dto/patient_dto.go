package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateProfileRequest completes a patient registration. Until it is
// submitted the account stays profile-incomplete and cannot book.
type CreateProfileRequest struct {
	Sex        string `json:"sex" validate:"required,oneof=MALE FEMALE"`
	Phone      string `json:"phone" validate:"omitempty,phone"`
	NationalID string `json:"national_id" validate:"required,national_id"`
}

type UpdateProfileRequest struct {
	Sex        string `json:"sex" validate:"omitempty,oneof=MALE FEMALE"`
	Phone      string `json:"phone" validate:"omitempty,phone"`
	NationalID string `json:"national_id" validate:"omitempty,national_id"`
}

// Response DTOs

type PatientResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Sex        string    `json:"sex"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
