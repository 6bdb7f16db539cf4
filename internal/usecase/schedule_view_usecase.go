package usecase

import (
	"context"
	"time"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/domain/scheduling"
	"clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultDateCardSpan = 7
	defaultSlotCount    = 3
)

// ScheduleViewUsecase serves the read-only calendar projections: the
// side-by-side provider columns, the per-day summary cards, and the
// consecutive-slot previews used when booking a longer visit.
type ScheduleViewUsecase interface {
	MultiDoctorSchedule(ctx context.Context, q ListQuery) (*dto.MultiDoctorScheduleResponse, error)
	DateCards(ctx context.Context, day, endDay, doctorID string) (*dto.DateCardsResponse, error)
	ConsecutiveSlots(ctx context.Context, doctorID, day, startTime string, count int) (*dto.ConsecutiveSlotsResponse, error)
}

type scheduleViewUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cfg      config.SchedulingConfig
	apptRepo repository.AppointmentRepository
	patients repository.PatientDirectory
	registry service.DoctorRegistry
}

func NewScheduleViewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SchedulingConfig,
	apptRepo repository.AppointmentRepository,
	patients repository.PatientDirectory,
	registry service.DoctorRegistry,
) ScheduleViewUsecase {
	return &scheduleViewUsecase{
		db:       db,
		log:      log,
		cfg:      cfg,
		apptRepo: apptRepo,
		patients: patients,
		registry: registry,
	}
}

// MultiDoctorSchedule returns one column per offered provider for the day
// range. Unlike the flat listing, the show filter defaults to all so the
// calendar shows the full day.
func (u *scheduleViewUsecase) MultiDoctorSchedule(ctx context.Context, q ListQuery) (*dto.MultiDoctorScheduleResponse, error) {
	db := u.db.WithContext(ctx)
	if !u.apptRepo.HasSchema(db) {
		return nil, ErrScheduleNotProvisioned
	}

	from, to, err := dayRange(q.Day, q.EndDay)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	show := q.Show
	if show == "" {
		show = "all"
	}

	appts, err := u.apptRepo.FindRange(db, from, to, "")
	if err != nil {
		u.log.Warnf("Failed to load multi-doctor schedule: %+v", err)
		return nil, err
	}

	shortIDs, err := bulkShortIDs(db, u.patients, appts)
	if err != nil {
		u.log.Warnf("Failed to bulk-load patient short ids: %+v", err)
		return nil, err
	}

	appts = filterSearch(appts, shortIDs, q.Search)
	appts = filterShow(appts, show, now)

	byDoctor := make(map[string][]entity.Appointment)
	for i := range appts {
		byDoctor[appts[i].DoctorID] = append(byDoctor[appts[i].DoctorID], appts[i])
	}

	colors := u.registry.Colors(ctx)
	columns := make([]dto.DoctorScheduleView, 0, len(u.registry.Choices()))
	for _, choice := range u.registry.Choices() {
		rows := byDoctor[choice.ID]
		responses := converter.AppointmentsToResponses(rows, shortIDs, colors, now)

		byDate := make(map[string][]dto.AppointmentResponse)
		for i := range rows {
			day := rows[i].StartsAt.Format(scheduling.DayFormat)
			byDate[day] = append(byDate[day], responses[i])
		}

		columns = append(columns, dto.DoctorScheduleView{
			DoctorID:           choice.ID,
			Label:              choice.Label,
			Appointments:       responses,
			AppointmentsByDate: byDate,
			TotalCount:         len(responses),
		})
	}

	return &dto.MultiDoctorScheduleResponse{Doctors: columns}, nil
}

// DateCards summarizes bookings per day across the range so the UI can
// render navigation chips. An empty end day covers a week from the start.
func (u *scheduleViewUsecase) DateCards(ctx context.Context, day, endDay, doctorID string) (*dto.DateCardsResponse, error) {
	db := u.db.WithContext(ctx)
	if !u.apptRepo.HasSchema(db) {
		return nil, ErrScheduleNotProvisioned
	}

	start, err := scheduling.CombineDayTime(day, "00:00")
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	var end time.Time
	if endDay == "" {
		end = start.AddDate(0, 0, defaultDateCardSpan-1)
	} else {
		end, err = scheduling.CombineDayTime(endDay, "00:00")
		if err != nil {
			return nil, ErrInvalidDateTime
		}
	}
	if end.Before(start) {
		end = start
	}

	appts, err := u.apptRepo.FindRange(db, start, end.AddDate(0, 0, 1), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load date cards: %+v", err)
		return nil, err
	}

	type counts struct{ total, done int }
	byDay := make(map[string]counts)
	for i := range appts {
		key := appts[i].StartsAt.Format(scheduling.DayFormat)
		c := byDay[key]
		c.total++
		if appts[i].IsDone() {
			c.done++
		}
		byDay[key] = c
	}

	var cards []dto.DateCard
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(scheduling.DayFormat)
		c := byDay[key]
		cards = append(cards, dto.DateCard{
			Date:      key,
			DayOfWeek: d.Weekday().String(),
			Stats:     dto.DateCardStats{Total: c.total, Done: c.done},
		})
	}

	return &dto.DateCardsResponse{Cards: cards}, nil
}

// ConsecutiveSlots previews a run of back-to-back slots starting at the
// given clock, flagging each one that collides with an existing booking once
// the grace buffer is applied.
func (u *scheduleViewUsecase) ConsecutiveSlots(ctx context.Context, doctorID, day, startTime string, count int) (*dto.ConsecutiveSlotsResponse, error) {
	db := u.db.WithContext(ctx)
	if !u.apptRepo.HasSchema(db) {
		return nil, ErrScheduleNotProvisioned
	}
	if !u.registry.IsKnown(doctorID) {
		return nil, ErrUnknownDoctor
	}
	if count <= 0 {
		count = defaultSlotCount
	}

	start, err := scheduling.CombineDayTime(day, startTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	slot := time.Duration(u.cfg.SlotMinutes) * time.Minute
	grace := time.Duration(u.cfg.GraceMinutes) * time.Minute

	// One window query covers the whole run including the grace padding.
	runWindow := scheduling.Interval{Start: start, End: start.Add(time.Duration(count) * slot)}.WithGrace(grace)
	existing, err := u.apptRepo.FindWindow(db, doctorID, runWindow.Start, runWindow.End, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed consecutive-slot query for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	booked := make([]scheduling.BookedSlot, 0, len(existing))
	for i := range existing {
		booked = append(booked, scheduling.BookedSlot{
			ID:       existing[i].ID,
			Title:    existing[i].Title,
			Interval: scheduling.Interval{Start: existing[i].StartsAt, End: existing[i].EndsAt},
		})
	}

	slots := make([]dto.SlotPreview, 0, count)
	for i := 0; i < count; i++ {
		slotStart := start.Add(time.Duration(i) * slot)
		candidate := scheduling.Interval{Start: slotStart, End: slotStart.Add(slot)}
		conflict := scheduling.FindConflict(booked, candidate, grace, uuid.Nil)

		startClock := slotStart.Format(scheduling.TimeFormat)
		endClock, err := scheduling.NextSlotEnd(startClock, u.cfg.SlotMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, dto.SlotPreview{
			StartTime:  startClock,
			EndTime:    endClock,
			Available:  conflict == nil,
			SlotNumber: i + 1,
		})
	}

	return &dto.ConsecutiveSlotsResponse{DoctorID: doctorID, Day: day, Slots: slots}, nil
}
