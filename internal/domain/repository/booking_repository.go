package repository

import (
	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id int64) (*entity.Booking, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error)
	Rebind(db *gorm.DB, booking *entity.Booking, newSlotID int) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
