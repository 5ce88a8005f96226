package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a patient's claim on exactly one slot. slot_id carries its own
// unique index so a slot can be booked at most once; the (slot_id, patient_id)
// pair is additionally unique as a defensive constraint.
type Booking struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotID    int       `gorm:"column:slot_id;not null;uniqueIndex:uq_bookings_slot_id;uniqueIndex:uq_bookings_slot_id_patient_id" json:"slot_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_bookings_slot_id_patient_id" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Slot    Slot           `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
