package usecase

import (
	"context"
	"testing"

	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProfileUsecase() (PatientProfileUsecase, *MockPatientProfileRepository) {
	profileRepo := &MockPatientProfileRepository{}
	uc := NewPatientProfileUsecase(testDB(), testLogger(), profileRepo, noopAuditService{})
	return uc, profileRepo
}

func TestCreateProfile_Success(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()
	userID := uuid.New()

	profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(nil)

	result, err := uc.CreateProfile(context.Background(), userID, &dto.CreateProfileRequest{
		Sex:        entity.SexFemale,
		Phone:      "+5511987654321",
		NationalID: "12345678909",
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, entity.SexFemale, result.Sex)
	assert.Equal(t, "12345678909", result.NationalID)
	profileRepo.AssertExpectations(t)
}

func TestCreateProfile_NationalIDTaken(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()

	profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_patient_profiles_national_id",
	})

	_, err := uc.CreateProfile(context.Background(), uuid.New(), &dto.CreateProfileRequest{
		Sex:        entity.SexMale,
		NationalID: "12345678909",
	})

	assert.ErrorIs(t, err, ErrNationalIDExists)
}

func TestCreateProfile_AlreadyCompleted(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()

	profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "patient_profiles_pkey",
	})

	_, err := uc.CreateProfile(context.Background(), uuid.New(), &dto.CreateProfileRequest{
		Sex:        entity.SexMale,
		NationalID: "12345678909",
	})

	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestGetProfile_NotFound(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()
	userID := uuid.New()

	profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

	_, err := uc.GetProfile(context.Background(), userID)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()
	userID := uuid.New()

	profileRepo.On("FindByUserID", mock.Anything, userID).Return(&entity.PatientProfile{
		UserID:     userID,
		Sex:        entity.SexMale,
		Phone:      "+5511900000000",
		NationalID: "12345678909",
	}, nil)
	profileRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(nil)

	result, err := uc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
		Phone: "+5511911111111",
	})

	assert.NoError(t, err)
	assert.Equal(t, "+5511911111111", result.Phone)
	// Untouched fields keep their stored values
	assert.Equal(t, entity.SexMale, result.Sex)
	assert.Equal(t, "12345678909", result.NationalID)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc, profileRepo := setupProfileUsecase()
	userID := uuid.New()

	profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)

	_, err := uc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Phone: "+5511911111111"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}
