package converter

import (
	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Email:         doctor.Email,
		LicenseNumber: doctor.LicenseNumber,
		Phone:         doctor.Phone,
		SpecialtyID:   doctor.SpecialtyID,
	}

	// Include specialty info if preloaded
	if doctor.Specialty.ID != 0 {
		response.Specialty = SpecialtyToResponse(&doctor.Specialty)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
