package repository

import (
	"time"

	"medagenda/internal/domain/entity"

	"gorm.io/gorm"
)

type SlotRepository interface {
	Create(db *gorm.DB, slot *entity.Slot) error
	FindByID(db *gorm.DB, id int) (*entity.Slot, error)
	FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.Slot, error)
	// FindAvailable returns slots on or after the given day that have no
	// booking attached, ordered by day then hour block.
	FindAvailable(db *gorm.DB, from time.Time) ([]entity.Slot, error)
	Update(db *gorm.DB, slot *entity.Slot) error
	// DeleteCascade removes the slot and its dependent booking, if any,
	// inside a single transaction.
	DeleteCascade(db *gorm.DB, id int) (int64, error)
}
