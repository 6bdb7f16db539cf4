package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/delivery/http/middleware"
	"clinic-scheduler/internal/service"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
	"clinic-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.appointmentUsecase.List(r.Context(), listQueryFromRequest(r))
	if err != nil {
		writeSchedulingError(w, err, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", list)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appt, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment")
		return
	}
	if appt == nil {
		response.NotFound(w, "Appointment not found")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appt)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetActorFromContext(r.Context())
	id, err := h.appointmentUsecase.Create(r.Context(), &req, actor)
	if err != nil {
		writeSchedulingError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", dto.AppointmentCreatedResponse{ID: id})
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetActorFromContext(r.Context())
	if err := h.appointmentUsecase.Update(r.Context(), id, &req, actor); err != nil {
		writeSchedulingError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", nil)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		writeSchedulingError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeSchedulingError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", nil)
}

func (h *AppointmentHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	id, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	result, err := h.appointmentUsecase.Move(r.Context(), id, req.TargetDoctor, req.TargetTime)
	if err != nil {
		writeSchedulingError(w, err, "Failed to move appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment moved successfully", result)
}

func (h *AppointmentHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.appointmentUsecase.Timeline(r.Context(), listQueryFromRequest(r))
	if err != nil {
		writeSchedulingError(w, err, "Failed to build timeline")
		return
	}

	response.Success(w, http.StatusOK, "Timeline retrieved successfully", timeline)
}

func listQueryFromRequest(r *http.Request) usecase.ListQuery {
	q := r.URL.Query()
	return usecase.ListQuery{
		Day:      q.Get("day"),
		EndDay:   q.Get("end_day"),
		DoctorID: q.Get("doctor_id"),
		Search:   q.Get("search"),
		Show:     q.Get("show"),
	}
}

// writeSchedulingError maps the scheduling error taxonomy onto HTTP. Slot
// conflicts carry the blocking appointment so the UI can point at it.
func writeSchedulingError(w http.ResponseWriter, err error, fallback string) {
	var overlap *usecase.OverlapError
	if errors.As(err, &overlap) {
		response.Conflict(w, "Time slot conflicts with an existing appointment", map[string]string{
			"conflicting_id":    overlap.ConflictingID.String(),
			"conflicting_title": overlap.ConflictingTitle,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrTitleRequired):
		response.Error(w, http.StatusBadRequest, "Appointment title is required", nil)
	case errors.Is(err, usecase.ErrInvalidDateTime):
		response.Error(w, http.StatusBadRequest, "Invalid day or time", nil)
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
	case errors.Is(err, usecase.ErrUnknownDoctor):
		response.Error(w, http.StatusBadRequest, "Unknown doctor", nil)
	case errors.Is(err, usecase.ErrScheduleNotProvisioned):
		response.ServiceUnavailable(w, "Schedule storage is not provisioned")
	case errors.Is(err, service.ErrBookingLockBusy):
		response.ServiceUnavailable(w, "Doctor schedule is busy, please retry")
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseCount(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
