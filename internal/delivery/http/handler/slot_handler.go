package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"medagenda/internal/delivery/dto"
	"medagenda/internal/domain/entity"
	"medagenda/internal/usecase"
	"medagenda/pkg/response"
	"medagenda/pkg/validator"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.CreateSlot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDayFormat, usecase.ErrInvalidHourBlock:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSlotPastDay, usecase.ErrSlotWeekendDay:
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case usecase.ErrSlotTaken:
			response.Conflict(w, "A slot already exists for this day and hour block")
		default:
			response.InternalServerError(w, "Failed to create slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	slot, err := h.slotUsecase.GetSlot(r.Context(), id)
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *SlotHandler) GetAllSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.SlotFilter{
		StartAt:       q.Get("start_at"),
		EndAt:         q.Get("end_at"),
		DoctorName:    q.Get("doctor"),
		SpecialtyName: q.Get("specialty"),
	}

	slots, err := h.slotUsecase.GetAllSlots(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetAvailableSlots lists open slots from today onward, the view a patient
// picks from before booking.
func (h *SlotHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.GetAvailableSlots(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.UpdateSlot(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDayFormat, usecase.ErrInvalidHourBlock:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSlotPastDay, usecase.ErrSlotWeekendDay:
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case usecase.ErrSlotTaken:
			response.Conflict(w, "A slot already exists for this day and hour block")
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.slotUsecase.DeleteSlot(r.Context(), id); err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to delete slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot and related bookings deleted successfully", nil)
}
