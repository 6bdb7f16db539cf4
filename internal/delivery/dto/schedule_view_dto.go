package dto

// DoctorScheduleView is one provider's column in the multi-doctor calendar.
type DoctorScheduleView struct {
	DoctorID           string                           `json:"doctor_id"`
	Label              string                           `json:"label"`
	Appointments       []AppointmentResponse            `json:"appointments"`
	AppointmentsByDate map[string][]AppointmentResponse `json:"appointments_by_date"`
	TotalCount         int                              `json:"total_count"`
}

type MultiDoctorScheduleResponse struct {
	Doctors []DoctorScheduleView `json:"doctors"`
}

type DateCardStats struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// DateCard is a compact per-day summary used for range navigation.
type DateCard struct {
	Date      string        `json:"date"`
	DayOfWeek string        `json:"day_of_week"`
	Stats     DateCardStats `json:"stats"`
}

type DateCardsResponse struct {
	Cards []DateCard `json:"cards"`
}

// SlotPreview is one candidate slot in a consecutive-slot lookup.
type SlotPreview struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Available  bool   `json:"available"`
	SlotNumber int    `json:"slot_number"`
}

type ConsecutiveSlotsResponse struct {
	DoctorID string        `json:"doctor_id"`
	Day      string        `json:"day"`
	Slots    []SlotPreview `json:"slots"`
}
