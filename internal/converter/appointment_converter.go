package converter

import (
	"time"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/scheduling"
)

// AppointmentToResponse converts an Appointment entity to its enriched
// response shape. Duration, time status, and clock labels are derived on
// every read; shortID and color come from the external registries and may be
// empty.
func AppointmentToResponse(appt *entity.Appointment, shortID string, color string, now time.Time) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	patientName := appt.PatientName
	if patientName == "" {
		patientName = "—"
	}
	title := appt.Title
	if title == "" {
		title = "Untitled Appointment"
	}

	var patientShortID *string
	if shortID != "" {
		patientShortID = &shortID
	}

	return &dto.AppointmentResponse{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		PatientName:     patientName,
		PatientPhone:    appt.PatientPhone,
		PatientShortID:  patientShortID,
		DoctorID:        appt.DoctorID,
		DoctorLabel:     doctorLabel(appt),
		Title:           title,
		Notes:           appt.Notes,
		StartsAt:        appt.StartsAt.Format(scheduling.ISOFormat),
		EndsAt:          appt.EndsAt.Format(scheduling.ISOFormat),
		Status:          string(appt.Status),
		Room:            appt.Room,
		ReminderMinutes: appt.ReminderMinutes,
		Duration:        appt.Duration(),
		DoctorColor:     color,
		TimeStatus:      string(scheduling.ClassifyTimeStatus(appt.StartsAt, appt.EndsAt, now)),
		TimeLabel:       scheduling.FormatTimeRange(appt.StartsAt, appt.EndsAt),
		StartLabel:      scheduling.FormatClockLabel(appt.StartsAt),
		EndLabel:        scheduling.FormatClockLabel(appt.EndsAt),
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice, resolving each row's short id and
// doctor color from the bulk-loaded maps.
func AppointmentsToResponses(appts []entity.Appointment, shortIDs map[string]string, colors map[string]string, now time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		appt := &appts[i]
		shortID := ""
		if appt.PatientID != nil {
			shortID = shortIDs[appt.PatientID.String()]
		}
		resp := AppointmentToResponse(appt, shortID, ColorFor(colors, appt.DoctorID), now)
		if resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

// ColorFor resolves a provider's display color with the palette fallback.
func ColorFor(colors map[string]string, doctorID string) string {
	if color, ok := colors[doctorID]; ok {
		return color
	}
	return colors["default"]
}

func doctorLabel(appt *entity.Appointment) string {
	if appt.DoctorLabel != "" {
		return appt.DoctorLabel
	}
	return appt.DoctorID
}
