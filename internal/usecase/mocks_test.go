package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// testDB returns a gorm handle that is never dialed; repository calls are
// mocked, so only WithContext is ever invoked on it. The Statement must be
// populated because Session clones it before any query runs.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

// Every usecase calls WithContext before touching a repository, so the bare
// handle has to survive the Session clone that triggers.
func TestTestDBSurvivesWithContext(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NotNil(t, testDB().WithContext(context.Background()))
	})
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

// MockPatientProfileRepository is a mock implementation of repository.PatientProfileRepository
type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

// MockSpecialtyRepository is a mock implementation of repository.SpecialtyRepository
type MockSpecialtyRepository struct {
	mock.Mock
}

func (m *MockSpecialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	args := m.Called(db, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	args := m.Called(db, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockDoctorRepository is a mock implementation of repository.DoctorRepository
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindBySpecialtyID(db *gorm.DB, specialtyID int) ([]entity.Doctor, error) {
	args := m.Called(db, specialtyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockSlotRepository is a mock implementation of repository.SlotRepository
type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	args := m.Called(db, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) FindByID(db *gorm.DB, id int) (*entity.Slot, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Slot), args.Error(1)
}

func (m *MockSlotRepository) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.Slot, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Slot), args.Error(1)
}

func (m *MockSlotRepository) FindAvailable(db *gorm.DB, from time.Time) ([]entity.Slot, error) {
	args := m.Called(db, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Slot), args.Error(1)
}

func (m *MockSlotRepository) Update(db *gorm.DB, slot *entity.Slot) error {
	args := m.Called(db, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) DeleteCascade(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(db, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(db *gorm.DB, id int64) (*entity.Booking, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Rebind(db *gorm.DB, booking *entity.Booking, newSlotID int) error {
	args := m.Called(db, booking, newSlotID)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// noopAuditService swallows audit writes; they are non-fatal everywhere.
type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogUpdate(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogDelete(ctx context.Context, db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}
