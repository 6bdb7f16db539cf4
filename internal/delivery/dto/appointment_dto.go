package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Day           string `json:"day" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"omitempty,datetime=15:04"`
	DoctorID      string `json:"doctor_id" validate:"omitempty,max=100"`
	Title         string `json:"title" validate:"max=255"`
	Notes         string `json:"notes"`
	Room          string `json:"room" validate:"omitempty,max=100"`
	PatientID     string `json:"patient_id" validate:"omitempty,uuid"`
	PatientName   string `json:"patient_name" validate:"omitempty,max=255"`
	PatientPhone  string `json:"patient_phone" validate:"omitempty,max=50"`
	PatientLookup string `json:"patient_lookup" validate:"omitempty,max=255"`
}

// UpdateAppointmentRequest carries the same fields as create; empty fields
// fall back to the stored row rather than to the configured defaults.
type UpdateAppointmentRequest = CreateAppointmentRequest

type MoveAppointmentRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	TargetDoctor  string `json:"target_doctor" validate:"required,max=100"`
	TargetTime    string `json:"target_time" validate:"required,datetime=15:04"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SetDoctorColorRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	PatientID       *uuid.UUID `json:"patient_id"`
	PatientName     string     `json:"patient_name"`
	PatientPhone    *string    `json:"patient_phone"`
	PatientShortID  *string    `json:"patient_short_id"`
	DoctorID        string     `json:"doctor_id"`
	DoctorLabel     string     `json:"doctor_label"`
	Title           string     `json:"title"`
	Notes           string     `json:"notes"`
	StartsAt        string     `json:"starts_at"`
	EndsAt          string     `json:"ends_at"`
	Status          string     `json:"status"`
	Room            *string    `json:"room"`
	ReminderMinutes int        `json:"reminder_minutes"`
	Duration        int        `json:"duration"`
	DoctorColor     string     `json:"doctor_color"`
	TimeStatus      string     `json:"time_status"`
	TimeLabel       string     `json:"time_label"`
	StartLabel      string     `json:"start_label"`
	EndLabel        string     `json:"end_label"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AppointmentCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// MoveResultResponse is the summary returned after a successful reschedule.
type MoveResultResponse struct {
	DoctorID    string `json:"doctor_id"`
	DoctorLabel string `json:"doctor_label"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
}

type TimelineBlock struct {
	Hour    string                `json:"hour"`
	Entries []AppointmentResponse `json:"entries"`
}

type TimelineResponse struct {
	Day    string          `json:"day"`
	Blocks []TimelineBlock `json:"blocks"`
}
