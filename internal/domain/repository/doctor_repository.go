package repository

import (
	"medagenda/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindBySpecialtyID(db *gorm.DB, specialtyID int) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	// DeleteCascade removes the doctor together with its slots and dependent
	// bookings inside a single transaction.
	DeleteCascade(db *gorm.DB, id int) (int64, error)
}
