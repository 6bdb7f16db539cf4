package usecase

import (
	"strings"
	"time"

	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/domain/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dayRange converts a day pair into the inclusive query bounds
// [day 00:00, endDay 23:59:59]. An empty end day means a single day.
func dayRange(day, endDay string) (time.Time, time.Time, error) {
	from, err := scheduling.CombineDayTime(day, "00:00")
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateTime
	}
	if endDay == "" {
		endDay = day
	}
	to, err := scheduling.CombineDayTime(endDay, "23:59")
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateTime
	}
	return from, to.Add(59 * time.Second), nil
}

// bulkShortIDs resolves every distinct patient id in the slice to its short
// id in one directory query, keyed by the uuid's string form for the
// converter.
func bulkShortIDs(db *gorm.DB, patients repository.PatientDirectory, appts []entity.Appointment) (map[string]string, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for i := range appts {
		if pid := appts[i].PatientID; pid != nil {
			if _, ok := seen[*pid]; !ok {
				seen[*pid] = struct{}{}
				ids = append(ids, *pid)
			}
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	byUUID, err := patients.ShortIDs(db, ids)
	if err != nil {
		return nil, err
	}
	shortIDs := make(map[string]string, len(byUUID))
	for id, short := range byUUID {
		shortIDs[id.String()] = short
	}
	return shortIDs, nil
}

// filterSearch keeps rows whose patient name, phone, title, or patient short
// id contains the term, case-insensitively. An empty term keeps everything.
func filterSearch(appts []entity.Appointment, shortIDs map[string]string, term string) []entity.Appointment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return appts
	}

	matched := appts[:0]
	for i := range appts {
		appt := &appts[i]
		shortID := ""
		if appt.PatientID != nil {
			shortID = shortIDs[appt.PatientID.String()]
		}
		phone := ""
		if appt.PatientPhone != nil {
			phone = *appt.PatientPhone
		}
		haystack := strings.ToLower(appt.PatientName + " " + phone + " " + appt.Title + " " + shortID)
		if strings.Contains(haystack, term) {
			matched = append(matched, *appt)
		}
	}
	return matched
}

// filterShow applies the upcoming/past/all temporal filter on the start
// time: a row is past once its start has gone by, so an in-progress visit
// sits in the past bucket. Unknown values fall back to upcoming.
func filterShow(appts []entity.Appointment, show string, now time.Time) []entity.Appointment {
	switch show {
	case "all":
		return appts
	case "past":
		matched := appts[:0]
		for i := range appts {
			if appts[i].StartsAt.Before(now) {
				matched = append(matched, appts[i])
			}
		}
		return matched
	default: // upcoming
		matched := appts[:0]
		for i := range appts {
			if !appts[i].StartsAt.Before(now) {
				matched = append(matched, appts[i])
			}
		}
		return matched
	}
}
