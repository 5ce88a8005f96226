package usecase

import (
	"testing"

	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDoctorUsecase() (DoctorUsecase, *MockDoctorRepository, *MockSpecialtyRepository) {
	doctorRepo := &MockDoctorRepository{}
	specialtyRepo := &MockSpecialtyRepository{}

	uc := NewDoctorUsecase(testDB(), testLogger(), doctorRepo, specialtyRepo, noopAuditService{})
	return uc, doctorRepo, specialtyRepo
}

func TestCreateDoctor_Success(t *testing.T) {
	uc, doctorRepo, _ := setupDoctorUsecase()

	doctorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Doctor")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Doctor).ID = 3
	}).Return(nil)

	result, err := uc.CreateDoctor(authedContext(uuid.New()), &dto.CreateDoctorRequest{
		Name:          "Dr. Helena Ramos",
		Email:         "helena@clinic.example.com",
		LicenseNumber: "CRM-12345",
		SpecialtyID:   2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	assert.Equal(t, 2, result.SpecialtyID)
}

func TestCreateDoctor_UnknownSpecialty(t *testing.T) {
	uc, doctorRepo, _ := setupDoctorUsecase()

	doctorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Doctor")).Return(&pgconn.PgError{
		Code:           "23503",
		ConstraintName: "fk_doctors_specialty",
	})

	_, err := uc.CreateDoctor(authedContext(uuid.New()), &dto.CreateDoctorRequest{
		Name:          "Dr. Helena Ramos",
		Email:         "helena@clinic.example.com",
		LicenseNumber: "CRM-12345",
		SpecialtyID:   99,
	})

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestGetDoctorsBySpecialty_UnknownSpecialty(t *testing.T) {
	uc, _, specialtyRepo := setupDoctorUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.GetDoctorsBySpecialty(authedContext(uuid.New()), 99)

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestGetDoctorsBySpecialty_Success(t *testing.T) {
	uc, doctorRepo, specialtyRepo := setupDoctorUsecase()

	specialtyRepo.On("FindByID", mock.Anything, 2).Return(&entity.Specialty{ID: 2, Name: "Cardiology"}, nil)
	doctorRepo.On("FindBySpecialtyID", mock.Anything, 2).Return([]entity.Doctor{
		{ID: 1, Name: "Dr. A", SpecialtyID: 2},
		{ID: 2, Name: "Dr. B", SpecialtyID: 2},
	}, nil)

	result, err := uc.GetDoctorsBySpecialty(authedContext(uuid.New()), 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestDeleteDoctor_NotFound(t *testing.T) {
	uc, doctorRepo, _ := setupDoctorUsecase()

	doctorRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	err := uc.DeleteDoctor(authedContext(uuid.New()), 99)

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDeleteDoctor_Cascades(t *testing.T) {
	uc, doctorRepo, _ := setupDoctorUsecase()

	doctorRepo.On("FindByID", mock.Anything, 3).Return(&entity.Doctor{ID: 3, Name: "Dr. Helena Ramos"}, nil)
	doctorRepo.On("DeleteCascade", mock.Anything, 3).Return(int64(1), nil)

	err := uc.DeleteDoctor(authedContext(uuid.New()), 3)

	assert.NoError(t, err)
	doctorRepo.AssertExpectations(t)
}
