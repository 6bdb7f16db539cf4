package handler

import (
	"encoding/json"
	"net/http"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/service"
	"clinic-scheduler/pkg/response"
	"clinic-scheduler/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	registry  service.DoctorRegistry
	validator *validator.CustomValidator
}

func NewDoctorHandler(registry service.DoctorRegistry, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		registry:  registry,
		validator: validator,
	}
}

func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.registry.ChoicesWithColors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["id"]

	var req dto.SetDoctorColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.registry.SetColor(r.Context(), doctorID, req.Color); err != nil {
		response.InternalServerError(w, "Failed to set doctor color")
		return
	}

	response.Success(w, http.StatusOK, "Doctor color updated successfully", nil)
}

func (h *DoctorHandler) DeleteColor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["id"]

	if err := h.registry.DeleteColor(r.Context(), doctorID); err != nil {
		response.InternalServerError(w, "Failed to reset doctor color")
		return
	}

	response.Success(w, http.StatusOK, "Doctor color reset successfully", nil)
}
