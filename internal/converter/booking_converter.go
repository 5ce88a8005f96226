package converter

import (
	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:        booking.ID,
		SlotID:    booking.SlotID,
		PatientID: booking.PatientID,
		CreatedAt: booking.CreatedAt,
	}

	// Include slot info if preloaded
	if booking.Slot.ID != 0 {
		response.Slot = SlotToResponse(&booking.Slot)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *BookingToResponse(&booking)
	}
	return responses
}
