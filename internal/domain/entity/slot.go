package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// HourBlock is one of the five fixed one-hour consultation ranges.
type HourBlock string

const (
	HourBlock1 HourBlock = "1" // 07:00 - 08:00
	HourBlock2 HourBlock = "2" // 08:00 - 09:00
	HourBlock3 HourBlock = "3" // 09:00 - 10:00
	HourBlock4 HourBlock = "4" // 10:00 - 11:00
	HourBlock5 HourBlock = "5" // 11:00 - 12:00
)

var hourBlockLabels = map[HourBlock]string{
	HourBlock1: "07:00 - 08:00",
	HourBlock2: "08:00 - 09:00",
	HourBlock3: "09:00 - 10:00",
	HourBlock4: "10:00 - 11:00",
	HourBlock5: "11:00 - 12:00",
}

// IsValid reports whether the hour block is one of the five known ranges.
func (h HourBlock) IsValid() bool {
	_, ok := hourBlockLabels[h]
	return ok
}

// Label returns the human readable time range for the block.
func (h HourBlock) Label() string {
	return hourBlockLabels[h]
}

// Slot day validation errors
var (
	ErrPastDay    = errors.New("slot day is in the past")
	ErrWeekendDay = errors.New("slot day falls on a weekend")
)

// ValidateSlotDay checks that day is not before today and falls on a weekday.
// Date granularity only: a slot for today is accepted even if its hour block
// has already elapsed.
func ValidateSlotDay(day, today time.Time) error {
	day = day.Truncate(24 * time.Hour)
	today = today.Truncate(24 * time.Hour)

	if day.Before(today) {
		return ErrPastDay
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return ErrWeekendDay
	}
	return nil
}

// Slot is a bookable (day, hour block) unit tied to one doctor.
// The (day, hour_block) pair is unique system-wide, not per doctor.
type Slot struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:uq_slots_day_hour_block" json:"day"`
	HourBlock HourBlock `gorm:"type:varchar(2);not null;uniqueIndex:uq_slots_day_hour_block" json:"hour_block"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Booking *Booking `gorm:"foreignKey:SlotID" json:"booking,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}
