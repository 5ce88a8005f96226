package repository

import (
	"medagenda/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
	// DeleteCascade removes the specialty together with its doctors, their
	// slots and dependent bookings inside a single transaction.
	DeleteCascade(db *gorm.DB, id int) (int64, error)
}
