package converter

import (
	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		UserID:     profile.UserID,
		Sex:        profile.Sex,
		Phone:      profile.Phone,
		NationalID: profile.NationalID,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}
