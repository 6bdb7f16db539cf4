package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the persisted lifecycle state of a visit. It is
// distinct from the time-derived display status, which is never stored.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusCheckedIn  AppointmentStatus = "checked_in"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusDone       AppointmentStatus = "done"
	StatusNoShow     AppointmentStatus = "no_show"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the six lifecycle values. Any
// valid status may follow any other; there is no transition graph.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCheckedIn, StatusInProgress, StatusDone, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked time slot for one provider. PatientName,
// PatientPhone and DoctorLabel are display snapshots captured at write time;
// they do not track later edits to the patient directory or doctor registry.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       *uuid.UUID        `gorm:"type:uuid;index" json:"patient_id"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientPhone    *string           `gorm:"type:varchar(50)" json:"patient_phone"`
	DoctorID        string            `gorm:"type:varchar(100);not null;index" json:"doctor_id"`
	DoctorLabel     string            `gorm:"type:varchar(255);not null" json:"doctor_label"`
	Title           string            `gorm:"type:varchar(255);not null" json:"title"`
	Notes           string            `gorm:"type:text" json:"notes"`
	StartsAt        time.Time         `gorm:"not null;index" json:"starts_at"`
	EndsAt          time.Time         `gorm:"not null" json:"ends_at"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Room            *string           `gorm:"type:varchar(100)" json:"room"`
	ReminderMinutes int               `gorm:"not null;default:0" json:"reminder_minutes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Duration returns the booked length in whole minutes.
func (a *Appointment) Duration() int {
	return int(a.EndsAt.Sub(a.StartsAt) / time.Minute)
}

// IsCancelled checks if the visit was cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsDone checks if the visit was completed.
func (a *Appointment) IsDone() bool {
	return a.Status == StatusDone
}
