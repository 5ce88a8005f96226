package repository

import (
	"errors"

	"medagenda/internal/domain/entity"
	domainRepo "medagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

// Create inserts the booking without any prior availability read. The unique
// index on slot_id is the arbiter: under concurrent attempts on the same slot
// exactly one insert commits and the rest fail with a unique violation.
func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id int64) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Slot.Doctor.Specialty").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Slot.Doctor.Specialty").
		Where("patient_id = ?", patientID).
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Rebind moves the booking to a different slot by deleting the old row and
// inserting a fresh one in one transaction. The insert goes through the same
// unique index as Create, so losing a race on the new slot rolls the whole
// transaction back and the original booking survives untouched.
func (r *bookingRepository) Rebind(db *gorm.DB, booking *entity.Booking, newSlotID int) error {
	replacement := &entity.Booking{
		SlotID:    newSlotID,
		PatientID: booking.PatientID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", booking.ID).Delete(&entity.Booking{}).Error; err != nil {
			return err
		}
		return tx.Create(replacement).Error
	})
	if err != nil {
		return err
	}
	booking.ID = replacement.ID
	booking.SlotID = replacement.SlotID
	booking.CreatedAt = replacement.CreatedAt
	return nil
}

func (r *bookingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}
