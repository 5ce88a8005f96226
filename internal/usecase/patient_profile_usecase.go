package usecase

import (
	"context"
	"errors"

	"medagenda/internal/converter"
	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
	"medagenda/internal/domain/repository"
	"medagenda/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileExists    = errors.New("profile already completed for this account")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNationalIDExists = errors.New("national id already registered")
)

type PatientProfileUsecase interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*dto.PatientResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// CreateProfile completes a patient registration. The profile row is only
// ever created here, on an explicit submit.
func (u *patientProfileUsecase) CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*dto.PatientResponse, error) {
	profile := &entity.PatientProfile{
		UserID:     userID,
		Sex:        req.Sex,
		Phone:      req.Phone,
		NationalID: req.NationalID,
	}

	if err := u.profileRepo.Create(u.db.WithContext(ctx), profile); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDExists
		}
		if isDuplicateKeyError(err, "patient_profiles_pkey") {
			return nil, ErrProfileExists
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionProfileCreate, "patient_profile", userID.String(), converter.PatientProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.PatientResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	oldValue := converter.PatientProfileToResponse(profile)

	if req.Sex != "" {
		profile.Sex = req.Sex
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.NationalID != "" {
		profile.NationalID = req.NationalID
	}

	if err := u.profileRepo.Update(u.db.WithContext(ctx), profile); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDExists
		}
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionProfileUpdate, "patient_profile", userID.String(), oldValue, converter.PatientProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.PatientProfileToResponse(profile), nil
}
