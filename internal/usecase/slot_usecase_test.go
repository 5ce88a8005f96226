package usecase

import (
	"testing"
	"time"

	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Fixed clock: Wednesday 2026-09-02.
var slotTestNow = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

func setupSlotUsecase() (*slotUsecase, *MockSlotRepository, *MockDoctorRepository) {
	slotRepo := &MockSlotRepository{}
	doctorRepo := &MockDoctorRepository{}

	uc := NewSlotUsecase(testDB(), testLogger(), slotRepo, doctorRepo, noopAuditService{}).(*slotUsecase)
	uc.now = func() time.Time { return slotTestNow }
	return uc, slotRepo, doctorRepo
}

func TestCreateSlot_Success(t *testing.T) {
	uc, slotRepo, doctorRepo := setupSlotUsecase()
	adminID := uuid.New()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1, Name: "Dr. House"}, nil)
	slotRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Slot")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Slot).ID = 7
	}).Return(nil)

	result, err := uc.CreateSlot(authedContext(adminID), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-03",
		HourBlock: "3",
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, result.ID)
	assert.Equal(t, "2026-09-03", result.Day)
	assert.Equal(t, "3", result.HourBlock)
	assert.Equal(t, "09:00 - 10:00", result.HourBlockLabel)
	assert.Equal(t, adminID, result.CreatedBy)
	slotRepo.AssertExpectations(t)
}

func TestCreateSlot_DoctorNotFound(t *testing.T) {
	uc, _, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  99,
		Day:       "2026-09-03",
		HourBlock: "1",
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateSlot_PastDay(t *testing.T) {
	uc, slotRepo, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)

	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-01",
		HourBlock: "1",
	})

	assert.ErrorIs(t, err, ErrSlotPastDay)
	slotRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSlot_Weekend(t *testing.T) {
	uc, _, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)

	// 2026-09-05 is a Saturday
	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-05",
		HourBlock: "1",
	})

	assert.ErrorIs(t, err, ErrSlotWeekendDay)
}

func TestCreateSlot_SameDayAccepted(t *testing.T) {
	uc, slotRepo, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)
	slotRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Slot")).Return(nil)

	// Same calendar day as the clock, even though 10:00 has passed block 3
	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-02",
		HourBlock: "3",
	})

	assert.NoError(t, err)
}

func TestCreateSlot_InvalidDayFormat(t *testing.T) {
	uc, _, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)

	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "03/09/2026",
		HourBlock: "1",
	})

	assert.ErrorIs(t, err, ErrInvalidDayFormat)
}

func TestCreateSlot_InvalidHourBlock(t *testing.T) {
	uc, _, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)

	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-03",
		HourBlock: "6",
	})

	assert.ErrorIs(t, err, ErrInvalidHourBlock)
}

func TestCreateSlot_DayHourBlockTaken(t *testing.T) {
	uc, slotRepo, doctorRepo := setupSlotUsecase()

	doctorRepo.On("FindByID", mock.Anything, 1).Return(&entity.Doctor{ID: 1}, nil)
	slotRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Slot")).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_slots_day_hour_block",
	})

	_, err := uc.CreateSlot(authedContext(uuid.New()), &dto.CreateSlotRequest{
		DoctorID:  1,
		Day:       "2026-09-03",
		HourBlock: "1",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetAvailableSlots_QueriesFromToday(t *testing.T) {
	uc, slotRepo, _ := setupSlotUsecase()

	today := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	slotRepo.On("FindAvailable", mock.Anything, today).Return([]entity.Slot{
		{ID: 1, DoctorID: 1, Day: today, HourBlock: entity.HourBlock1},
		{ID: 2, DoctorID: 1, Day: today, HourBlock: entity.HourBlock2},
	}, nil)

	result, err := uc.GetAvailableSlots(authedContext(uuid.New()))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	slotRepo.AssertExpectations(t)
}

func TestDeleteSlot_NotFound(t *testing.T) {
	uc, slotRepo, _ := setupSlotUsecase()

	slotRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	err := uc.DeleteSlot(authedContext(uuid.New()), 99)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeleteSlot_Success(t *testing.T) {
	uc, slotRepo, _ := setupSlotUsecase()

	slotRepo.On("FindByID", mock.Anything, 7).Return(&entity.Slot{ID: 7}, nil)
	slotRepo.On("DeleteCascade", mock.Anything, 7).Return(int64(1), nil)

	err := uc.DeleteSlot(authedContext(uuid.New()), 7)

	assert.NoError(t, err)
	slotRepo.AssertExpectations(t)
}
