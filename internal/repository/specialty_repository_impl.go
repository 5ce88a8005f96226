package repository

import (
	"errors"

	"medagenda/internal/domain/entity"
	domainRepo "medagenda/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Create(specialty).Error
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Save(specialty).Error
}

// DeleteCascade deletes the specialty and every doctor, slot and booking that
// hangs off it. The cascade is spelled out in one transaction so a failed
// child delete leaves nothing half-removed.
func (r *specialtyRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id IN (?)",
			tx.Model(&entity.Slot{}).Select("id").Where("doctor_id IN (?)",
				tx.Model(&entity.Doctor{}).Select("id").Where("specialty_id = ?", id)),
		).Delete(&entity.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id IN (?)",
			tx.Model(&entity.Doctor{}).Select("id").Where("specialty_id = ?", id),
		).Delete(&entity.Slot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("specialty_id = ?", id).Delete(&entity.Doctor{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Specialty{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
