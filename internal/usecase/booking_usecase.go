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

var (
	ErrProfileIncomplete = errors.New("complete your registration before booking")
	ErrSlotAlreadyTaken  = errors.New("slot is already booked")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotOwned   = errors.New("booking does not belong to you")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	UpdateBooking(ctx context.Context, bookingID int64, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int64) error
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	slotRepo     repository.SlotRepository
	profileRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	slotRepo repository.SlotRepository,
	profileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// CreateBooking claims a slot for the logged-in patient.
//
// Flow:
// 1. Resolve the patient profile; without one the account cannot book
// 2. Verify the slot exists
// 3. Insert the booking; the unique index on slot_id is the sole arbiter
//    under concurrent attempts, so a violation is an expected outcome, not
//    a fault
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileIncomplete
	}

	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %d: %+v", req.SlotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	booking := &entity.Booking{
		SlotID:    req.SlotID,
		PatientID: profile.UserID,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		// Covers both the slot_id index and the (slot_id, patient_id) pair:
		// another patient won the race, or this patient already holds the slot
		if isDuplicateKeyError(err, "uq_bookings_slot_id") {
			return nil, ErrSlotAlreadyTaken
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingCreate, "booking", strconv.FormatInt(booking.ID, 10), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	// Reload with slot+doctor info for the response
	fullBooking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || fullBooking == nil {
		u.log.Warnf("Failed to reload booking %d: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking created: id=%d, slot=%d, patient=%s", booking.ID, req.SlotID, profile.UserID)
	return converter.BookingToResponse(fullBooking), nil
}

// GetMyBookings returns the logged-in patient's bookings, newest first.
// An account without a profile gets an empty list, not an error; the
// response flags that registration still needs completing.
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return &dto.BookingListResponse{
			Bookings:        []dto.BookingResponse{},
			Total:           0,
			ProfileComplete: false,
		}, nil
	}

	bookings, err := u.bookingRepo.FindByPatientID(u.db.WithContext(ctx), profile.UserID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for patient %s: %+v", profile.UserID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings:        converter.BookingsToResponses(bookings),
		Total:           len(bookings),
		ProfileComplete: true,
	}, nil
}

// UpdateBooking moves an existing booking to a different slot. The swap is a
// delete-and-insert in one transaction, so claiming the new slot is arbitrated
// by the same unique index as a fresh booking and losing the race keeps the
// old booking intact.
func (u *bookingUsecase) UpdateBooking(ctx context.Context, bookingID int64, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.PatientID != userID {
		return nil, ErrBookingNotOwned
	}

	if booking.SlotID == req.SlotID {
		return converter.BookingToResponse(booking), nil
	}

	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %d: %+v", req.SlotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	oldSlotID := booking.SlotID
	if err := u.bookingRepo.Rebind(u.db.WithContext(ctx), booking, req.SlotID); err != nil {
		if isDuplicateKeyError(err, "uq_bookings_slot_id") {
			return nil, ErrSlotAlreadyTaken
		}
		u.log.Warnf("Failed to rebind booking %d to slot %d: %+v", bookingID, req.SlotID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingUpdate, "booking", strconv.FormatInt(booking.ID, 10), map[string]int{"slot_id": oldSlotID}, map[string]int{"slot_id": req.SlotID}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	fullBooking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || fullBooking == nil {
		u.log.Warnf("Failed to reload booking %d: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking moved: id=%d, slot %d -> %d", booking.ID, oldSlotID, req.SlotID)
	return converter.BookingToResponse(fullBooking), nil
}

// CancelBooking deletes the booking, freeing its slot. Ownership is checked
// here, not just in the listing, so a guessed booking id from another
// account is rejected.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID int64) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if booking.PatientID != userID {
		return ErrBookingNotOwned
	}

	affected, err := u.bookingRepo.Delete(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %d: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingCancel, "booking", strconv.FormatInt(bookingID, 10), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Booking cancelled: id=%d, slot=%d", bookingID, booking.SlotID)
	return nil
}
