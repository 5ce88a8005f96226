package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"medagenda/internal/converter"
	"medagenda/internal/delivery/dto"
	"medagenda/internal/delivery/http/middleware"
	"medagenda/internal/domain/entity"
	"medagenda/internal/domain/repository"
	"medagenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrSlotPastDay      = errors.New("slot day cannot be in the past")
	ErrSlotWeekendDay   = errors.New("slot day must be a weekday")
	ErrSlotTaken        = errors.New("a slot already exists for this day and hour block")
	ErrInvalidDayFormat = errors.New("invalid day format, use YYYY-MM-DD")
	ErrInvalidHourBlock = errors.New("invalid hour block")
)

type SlotUsecase interface {
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetSlot(ctx context.Context, slotID int) (*dto.SlotResponse, error)
	GetAllSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error)
	GetAvailableSlots(ctx context.Context) (*dto.SlotListResponse, error)
	UpdateSlot(ctx context.Context, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, slotID int) error
}

type slotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreateSlot validates the requested day and inserts the slot. The
// system-wide (day, hour_block) uniqueness is decided by the database
// constraint, not by a prior read.
func (u *slotUsecase) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return nil, ErrInvalidDayFormat
	}

	if err := u.validateDay(day); err != nil {
		return nil, err
	}

	hourBlock := entity.HourBlock(req.HourBlock)
	if !hourBlock.IsValid() {
		return nil, ErrInvalidHourBlock
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)

	slot := &entity.Slot{
		DoctorID:  req.DoctorID,
		Day:       day,
		HourBlock: hourBlock,
		CreatedBy: userID,
	}

	if err := u.slotRepo.Create(u.db.WithContext(ctx), slot); err != nil {
		if isDuplicateKeyError(err, "uq_slots_day_hour_block") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSlotCreate, "slot", strconv.Itoa(slot.ID), converter.SlotToResponse(slot)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) GetSlot(ctx context.Context, slotID int) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) GetAllSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find all slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// GetAvailableSlots lists slots a patient can still book: today or later,
// with no booking attached.
func (u *slotUsecase) GetAvailableSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAvailable(u.db.WithContext(ctx), u.now().UTC().Truncate(24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to find available slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *slotUsecase) UpdateSlot(ctx context.Context, slotID int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	oldValue := converter.SlotToResponse(slot)

	if req.DoctorID != 0 {
		doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		slot.DoctorID = req.DoctorID
	}
	if req.Day != "" {
		day, err := time.Parse("2006-01-02", req.Day)
		if err != nil {
			return nil, ErrInvalidDayFormat
		}
		if err := u.validateDay(day); err != nil {
			return nil, err
		}
		slot.Day = day
	}
	if req.HourBlock != "" {
		hourBlock := entity.HourBlock(req.HourBlock)
		if !hourBlock.IsValid() {
			return nil, ErrInvalidHourBlock
		}
		slot.HourBlock = hourBlock
	}

	if err := u.slotRepo.Update(u.db.WithContext(ctx), slot); err != nil {
		if isDuplicateKeyError(err, "uq_slots_day_hour_block") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update slot: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSlotUpdate, "slot", strconv.Itoa(slotID), oldValue, converter.SlotToResponse(slot)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.SlotToResponse(slot), nil
}

// DeleteSlot removes the slot and its booking, if any, in one transaction.
func (u *slotUsecase) DeleteSlot(ctx context.Context, slotID int) error {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}

	affected, err := u.slotRepo.DeleteCascade(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to delete slot: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSlotDelete, "slot", strconv.Itoa(slotID), converter.SlotToResponse(slot)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *slotUsecase) validateDay(day time.Time) error {
	switch err := entity.ValidateSlotDay(day, u.now().UTC()); err {
	case entity.ErrPastDay:
		return ErrSlotPastDay
	case entity.ErrWeekendDay:
		return ErrSlotWeekendDay
	default:
		return err
	}
}
