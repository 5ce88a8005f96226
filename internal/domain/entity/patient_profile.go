package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data.
// An account has at most one profile; it is only created when the patient
// explicitly completes registration, never alongside the user row.
type PatientProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Sex        string    `gorm:"type:varchar(6);not null" json:"sex"`
	Phone      string    `gorm:"type:varchar(17)" json:"phone,omitempty"`
	NationalID string    `gorm:"column:national_id;type:varchar(14);uniqueIndex;not null" json:"national_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PatientID" json:"bookings,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Sex constants
const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
)
