package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	SlotID int `json:"slot_id" validate:"required,min=1"`
}

type UpdateBookingRequest struct {
	SlotID int `json:"slot_id" validate:"required,min=1"`
}

// Response DTOs

type BookingResponse struct {
	ID        int64         `json:"id"`
	SlotID    int           `json:"slot_id"`
	PatientID uuid.UUID     `json:"patient_id"`
	Slot      *SlotResponse `json:"slot,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
	// ProfileComplete is false when the account has no patient profile yet;
	// the caller should prompt the user to complete registration.
	ProfileComplete bool `json:"profile_complete"`
}
