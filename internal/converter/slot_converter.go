package converter

import (
	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.SlotResponse{
		ID:             slot.ID,
		DoctorID:       slot.DoctorID,
		Day:            slot.Day.Format("2006-01-02"),
		HourBlock:      string(slot.HourBlock),
		HourBlockLabel: slot.HourBlock.Label(),
		CreatedBy:      slot.CreatedBy,
		CreatedAt:      slot.CreatedAt,
		UpdatedAt:      slot.UpdatedAt,
	}

	// Include doctor info if preloaded
	if slot.Doctor.ID != 0 {
		response.Doctor = DoctorToResponse(&slot.Doctor)
	}

	return response
}

// SlotsToResponses converts a slice of Slot entities to DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *SlotToResponse(&slot)
	}
	return responses
}
