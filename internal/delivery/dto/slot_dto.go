package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSlotRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required,min=1"`
	Day       string `json:"day" validate:"required"` // Format: YYYY-MM-DD
	HourBlock string `json:"hour_block" validate:"required,oneof=1 2 3 4 5"`
}

type UpdateSlotRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"omitempty,min=1"`
	Day       string `json:"day" validate:"omitempty"` // Format: YYYY-MM-DD
	HourBlock string `json:"hour_block" validate:"omitempty,oneof=1 2 3 4 5"`
}

// Response DTOs

type SlotResponse struct {
	ID             int             `json:"id"`
	DoctorID       int             `json:"doctor_id"`
	Doctor         *DoctorResponse `json:"doctor,omitempty"`
	Day            string          `json:"day"`
	HourBlock      string          `json:"hour_block"`
	HourBlockLabel string          `json:"hour_block_label"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
