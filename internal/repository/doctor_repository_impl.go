package repository

import (
	"errors"

	"medagenda/internal/domain/entity"
	domainRepo "medagenda/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialty").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specialty").Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialtyID(db *gorm.DB, specialtyID int) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("specialty_id = ?", specialtyID).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty").Save(doctor).Error
}

// DeleteCascade deletes the doctor together with its slots and any bookings
// on those slots, all inside one transaction.
func (r *doctorRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id IN (?)",
			tx.Model(&entity.Slot{}).Select("id").Where("doctor_id = ?", id),
		).Delete(&entity.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&entity.Slot{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Doctor{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
