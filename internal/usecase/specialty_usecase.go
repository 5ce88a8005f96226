package usecase

import (
	"context"
	"errors"
	"strconv"

	"medagenda/internal/converter"
	"medagenda/internal/delivery/dto"
	"medagenda/internal/delivery/http/middleware"
	"medagenda/internal/domain/entity"
	"medagenda/internal/domain/repository"
	"medagenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSpecialtyNotFound = errors.New("specialty not found")

type SpecialtyUsecase interface {
	CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetSpecialty(ctx context.Context, specialtyID int) (*dto.SpecialtyResponse, error)
	GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	UpdateSpecialty(ctx context.Context, specialtyID int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	DeleteSpecialty(ctx context.Context, specialtyID int) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
	}
}

func (u *specialtyUsecase) CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{
		Name: req.Name,
	}

	if err := u.specialtyRepo.Create(u.db.WithContext(ctx), specialty); err != nil {
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSpecialtyCreate, "specialty", strconv.Itoa(specialty.ID), converter.SpecialtyToResponse(specialty)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetSpecialty(ctx context.Context, specialtyID int) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *specialtyUsecase) UpdateSpecialty(ctx context.Context, specialtyID int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	oldValue := converter.SpecialtyToResponse(specialty)
	specialty.Name = req.Name

	if err := u.specialtyRepo.Update(u.db.WithContext(ctx), specialty); err != nil {
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSpecialtyUpdate, "specialty", strconv.Itoa(specialtyID), oldValue, converter.SpecialtyToResponse(specialty)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.SpecialtyToResponse(specialty), nil
}

// DeleteSpecialty removes the specialty and, through the repository cascade,
// its doctors, their slots and dependent bookings in one transaction.
func (u *specialtyUsecase) DeleteSpecialty(ctx context.Context, specialtyID int) error {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	affected, err := u.specialtyRepo.DeleteCascade(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionSpecialtyDelete, "specialty", strconv.Itoa(specialtyID), converter.SpecialtyToResponse(specialty)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
