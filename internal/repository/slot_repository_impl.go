package repository

import (
	"errors"
	"time"

	"medagenda/internal/domain/entity"
	domainRepo "medagenda/internal/domain/repository"

	"gorm.io/gorm"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	return db.Create(slot).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id int) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Preload("Doctor.Specialty").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindAll lists the slot catalog ordered by day. Supports optional filters:
// date range, doctor name, and specialty name.
func (r *slotRepository) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.Slot, error) {
	var slots []entity.Slot
	query := db.
		Joins("JOIN doctors ON doctors.id = slots.doctor_id").
		Joins("JOIN specialties ON specialties.id = doctors.specialty_id")

	if filter != nil {
		if filter.StartAt != "" {
			query = query.Where("slots.day >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("slots.day <= ?", filter.EndAt)
		}
		if filter.DoctorName != "" {
			query = query.Where("doctors.name ILIKE ?", "%"+filter.DoctorName+"%")
		}
		if filter.SpecialtyName != "" {
			query = query.Where("specialties.name ILIKE ?", "%"+filter.SpecialtyName+"%")
		}
	}

	err := query.
		Preload("Doctor.Specialty").
		Order("slots.day ASC, slots.hour_block ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindAvailable returns unbooked slots on or after the given day.
func (r *slotRepository) FindAvailable(db *gorm.DB, from time.Time) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.
		Joins("LEFT JOIN bookings ON bookings.slot_id = slots.id").
		Where("bookings.id IS NULL").
		Where("slots.day >= ?", from.Format("2006-01-02")).
		Preload("Doctor.Specialty").
		Order("slots.day ASC, slots.hour_block ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) Update(db *gorm.DB, slot *entity.Slot) error {
	return db.Omit("Doctor", "Booking").Save(slot).Error
}

// DeleteCascade deletes the slot and its booking, if one exists, in one
// transaction.
func (r *slotRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id = ?", id).Delete(&entity.Booking{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Slot{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
