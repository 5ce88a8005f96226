package usecase

import (
	"testing"

	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSpecialtyUsecase() (SpecialtyUsecase, *MockSpecialtyRepository) {
	specialtyRepo := &MockSpecialtyRepository{}
	uc := NewSpecialtyUsecase(testDB(), testLogger(), specialtyRepo, noopAuditService{})
	return uc, specialtyRepo
}

func TestCreateSpecialty_Success(t *testing.T) {
	uc, specialtyRepo := setupSpecialtyUsecase()

	specialtyRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Specialty")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Specialty).ID = 5
	}).Return(nil)

	result, err := uc.CreateSpecialty(authedContext(uuid.New()), &dto.CreateSpecialtyRequest{Name: "Dermatology"})

	assert.NoError(t, err)
	assert.Equal(t, 5, result.ID)
	assert.Equal(t, "Dermatology", result.Name)
}

func TestGetSpecialty_NotFound(t *testing.T) {
	uc, specialtyRepo := setupSpecialtyUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.GetSpecialty(authedContext(uuid.New()), 99)

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestUpdateSpecialty_Success(t *testing.T) {
	uc, specialtyRepo := setupSpecialtyUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 5).Return(&entity.Specialty{ID: 5, Name: "Dermatology"}, nil)
	specialtyRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Specialty")).Return(nil)

	result, err := uc.UpdateSpecialty(authedContext(uuid.New()), 5, &dto.UpdateSpecialtyRequest{Name: "Pediatric Dermatology"})

	assert.NoError(t, err)
	assert.Equal(t, "Pediatric Dermatology", result.Name)
}

func TestDeleteSpecialty_NotFound(t *testing.T) {
	uc, specialtyRepo := setupSpecialtyUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	err := uc.DeleteSpecialty(authedContext(uuid.New()), 99)

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestDeleteSpecialty_Cascades(t *testing.T) {
	uc, specialtyRepo := setupSpecialtyUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 5).Return(&entity.Specialty{ID: 5, Name: "Dermatology"}, nil)
	specialtyRepo.On("DeleteCascade", mock.Anything, 5).Return(int64(1), nil)

	err := uc.DeleteSpecialty(authedContext(uuid.New()), 5)

	assert.NoError(t, err)
	specialtyRepo.AssertExpectations(t)
}
