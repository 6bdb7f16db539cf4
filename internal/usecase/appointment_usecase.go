package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
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
	"gorm.io/gorm/clause"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrTitleRequired          = errors.New("appointment title is required")
	ErrInvalidDateTime        = errors.New("invalid day/time combination")
	ErrInvalidStatus          = errors.New("invalid appointment status")
	ErrUnknownDoctor          = errors.New("unknown doctor")
	ErrScheduleNotProvisioned = errors.New("appointments table is not provisioned")
)

// OverlapError reports a slot collision and carries the blocking booking so
// callers can point at it.
type OverlapError struct {
	ConflictingID    uuid.UUID
	ConflictingTitle string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("slot conflicts with appointment %s", e.ConflictingID)
}

// ListQuery filters the day-range listing. Show is one of upcoming/past/all;
// unknown values fall back to upcoming.
type ListQuery struct {
	Day      string
	EndDay   string
	DoctorID string
	Search   string
	Show     string
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, actor string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, actor string) error
	Move(ctx context.Context, id uuid.UUID, targetDoctor, targetTime string) (*dto.MoveResultResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, q ListQuery) (*dto.AppointmentListResponse, error)
	Timeline(ctx context.Context, q ListQuery) (*dto.TimelineResponse, error)
}

type appointmentUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cfg      config.SchedulingConfig
	apptRepo repository.AppointmentRepository
	patients repository.PatientDirectory
	registry service.DoctorRegistry
	lock     service.BookingLock
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SchedulingConfig,
	apptRepo repository.AppointmentRepository,
	patients repository.PatientDirectory,
	registry service.DoctorRegistry,
	lock service.BookingLock,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:       db,
		log:      log,
		cfg:      cfg,
		apptRepo: apptRepo,
		patients: patients,
		registry: registry,
		lock:     lock,
	}
}

func (u *appointmentUsecase) grace() time.Duration {
	return time.Duration(u.cfg.GraceMinutes) * time.Minute
}

func (u *appointmentUsecase) slot() time.Duration {
	return time.Duration(u.cfg.SlotMinutes) * time.Minute
}

// Create books a new slot. Defaults: today, 09:00, the configured slot
// length, and the first offered provider. The conflict check and the insert
// run as one atomic unit under the per-doctor lock.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, actor string) (uuid.UUID, error) {
	day := req.Day
	if day == "" {
		day = time.Now().Format(scheduling.DayFormat)
	}
	startTime := req.StartTime
	if startTime == "" {
		startTime = "09:00"
	}
	doctorID := req.DoctorID
	if doctorID == "" {
		doctorID = u.registry.Choices()[0].ID
	}
	doctorLabel := u.registry.LabelFor(doctorID)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return uuid.Nil, ErrTitleRequired
	}
	notes := strings.TrimSpace(req.Notes)

	startDt, err := scheduling.CombineDayTime(day, startTime)
	if err != nil {
		return uuid.Nil, ErrInvalidDateTime
	}
	startDt = scheduling.TruncateToMinute(startDt)
	candidate := scheduling.Interval{Start: startDt, End: startDt.Add(u.slot())}

	if !u.apptRepo.HasSchema(u.db.WithContext(ctx)) {
		return uuid.Nil, ErrScheduleNotProvisioned
	}

	apptID := uuid.New()
	err = u.lock.WithDoctorLock(ctx, doctorID, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		patientID, patientName, patientPhone, err := u.resolvePatient(tx, req)
		if err != nil {
			return err
		}

		if err := u.checkConflict(tx, doctorID, candidate, uuid.Nil); err != nil {
			return err
		}

		appt := &entity.Appointment{
			ID:           apptID,
			PatientID:    patientID,
			PatientName:  patientName,
			PatientPhone: patientPhone,
			DoctorID:     doctorID,
			DoctorLabel:  doctorLabel,
			Title:        title,
			Notes:        notes,
			StartsAt:     candidate.Start,
			EndsAt:       candidate.End,
			Status:       entity.StatusScheduled,
			Room:         optional(req.Room),
		}
		if err := u.apptRepo.Create(tx, appt); err != nil {
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		return tx.Commit().Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, starts=%s, actor=%s",
		apptID, doctorID, candidate.Start.Format(scheduling.ISOFormat), actor)
	return apptID, nil
}

// Update edits an existing booking. The duration is carried over from the
// stored row (floored at one minute) unless the timing fields move it; empty
// fields fall back to the stored values. The row's own id is excluded from
// the conflict evaluation so an unchanged update never self-conflicts.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, actor string) error {
	if !u.apptRepo.HasSchema(u.db.WithContext(ctx)) {
		return ErrScheduleNotProvisioned
	}

	existing, err := u.apptRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrAppointmentNotFound
	}

	doctorID := req.DoctorID
	if doctorID == "" {
		doctorID = existing.DoctorID
	}
	doctorLabel := u.registry.LabelFor(doctorID)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = existing.Title
	}
	notes := strings.TrimSpace(req.Notes)

	day := req.Day
	if day == "" {
		day = existing.StartsAt.Format(scheduling.DayFormat)
	}
	startTime := req.StartTime
	if startTime == "" {
		startTime = existing.StartsAt.Format(scheduling.TimeFormat)
	}

	startDt, err := scheduling.CombineDayTime(day, startTime)
	if err != nil {
		return ErrInvalidDateTime
	}
	startDt = scheduling.TruncateToMinute(startDt)

	duration := existing.EndsAt.Sub(existing.StartsAt)
	if duration < time.Minute {
		duration = time.Minute
	}
	candidate := scheduling.Interval{Start: startDt, End: startDt.Add(duration)}

	err = u.lock.WithDoctorLock(ctx, doctorID, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		patientID, patientName, patientPhone, err := u.resolvePatient(tx, req)
		if err != nil {
			return err
		}

		if err := u.checkConflict(tx, doctorID, candidate, id); err != nil {
			return err
		}

		existing.PatientID = patientID
		existing.PatientName = patientName
		existing.PatientPhone = patientPhone
		existing.DoctorID = doctorID
		existing.DoctorLabel = doctorLabel
		existing.Title = title
		existing.Notes = notes
		existing.StartsAt = candidate.Start
		existing.EndsAt = candidate.End
		if err := u.apptRepo.Update(tx, existing); err != nil {
			u.log.Warnf("Failed to update appointment %s: %+v", id, err)
			return err
		}

		return tx.Commit().Error
	})
	if err != nil {
		return err
	}

	u.log.Infof("Appointment updated: id=%s, doctor=%s, actor=%s", id, doctorID, actor)
	return nil
}

// Move reschedules a booking onto a target provider and start time on the
// same calendar day, using the configured slot length. Validate, compute,
// check, and write happen as one atomic unit so two concurrent moves cannot
// land in the same freed slot.
func (u *appointmentUsecase) Move(ctx context.Context, id uuid.UUID, targetDoctor, targetTime string) (*dto.MoveResultResponse, error) {
	if !u.apptRepo.HasSchema(u.db.WithContext(ctx)) {
		return nil, ErrScheduleNotProvisioned
	}

	var result *dto.MoveResultResponse
	err := u.lock.WithDoctorLock(ctx, targetDoctor, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		appt, err := u.apptRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appt == nil {
			return ErrAppointmentNotFound
		}

		if !u.registry.IsKnown(targetDoctor) {
			return ErrUnknownDoctor
		}

		day := appt.StartsAt.Format(scheduling.DayFormat)
		newStart, err := scheduling.CombineDayTime(day, strings.TrimSpace(targetTime))
		if err != nil {
			return ErrInvalidDateTime
		}
		newStart = scheduling.TruncateToMinute(newStart)
		candidate := scheduling.Interval{Start: newStart, End: newStart.Add(u.slot())}

		if err := u.checkConflict(tx, targetDoctor, candidate, id); err != nil {
			return err
		}

		appt.DoctorID = targetDoctor
		appt.DoctorLabel = u.registry.LabelFor(targetDoctor)
		appt.StartsAt = candidate.Start
		appt.EndsAt = candidate.End
		if err := u.apptRepo.Update(tx, appt); err != nil {
			u.log.Warnf("Failed to move appointment %s: %+v", id, err)
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		result = &dto.MoveResultResponse{
			DoctorID:    appt.DoctorID,
			DoctorLabel: appt.DoctorLabel,
			StartsAt:    appt.StartsAt.Format(scheduling.ISOFormat),
			EndsAt:      appt.EndsAt.Format(scheduling.ISOFormat),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment moved: id=%s, doctor=%s, starts=%s", id, result.DoctorID, result.StartsAt)
	return result, nil
}

// UpdateStatus stamps a new lifecycle status. Any of the six values may
// follow any other.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	newStatus := entity.AppointmentStatus(status)
	if !entity.ValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	if !u.apptRepo.HasSchema(u.db.WithContext(ctx)) {
		return ErrScheduleNotProvisioned
	}

	rows, err := u.apptRepo.UpdateStatus(u.db.WithContext(ctx), id, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update status for appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// Delete removes the row outright. There is no soft-delete tier; cascades
// into other systems are their owners' concern.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if !u.apptRepo.HasSchema(u.db.WithContext(ctx)) {
		return ErrScheduleNotProvisioned
	}

	rows, err := u.apptRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

// GetByID returns the enriched row, or nil when the id does not resolve or
// the schema is missing.
func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	if !u.apptRepo.HasSchema(db) {
		return nil, nil
	}

	appt, err := u.apptRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appt == nil {
		return nil, nil
	}

	shortID := ""
	if appt.PatientID != nil {
		shortIDs, err := u.patients.ShortIDs(db, []uuid.UUID{*appt.PatientID})
		if err != nil {
			u.log.Warnf("Failed to load patient short id: %+v", err)
		} else {
			shortID = shortIDs[*appt.PatientID]
		}
	}

	colors := u.registry.Colors(ctx)
	return converter.AppointmentToResponse(appt, shortID, converter.ColorFor(colors, appt.DoctorID), time.Now()), nil
}

// List fetches the day range, applies the search and show filters, and
// enriches every surviving row.
func (u *appointmentUsecase) List(ctx context.Context, q ListQuery) (*dto.AppointmentListResponse, error) {
	appts, shortIDs, err := u.fetchFiltered(ctx, q, time.Now())
	if err != nil {
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appts, shortIDs, u.registry.Colors(ctx), time.Now())
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// Timeline lists and bins the rows into 24 hour-of-day blocks for the
// calendar grid.
func (u *appointmentUsecase) Timeline(ctx context.Context, q ListQuery) (*dto.TimelineResponse, error) {
	now := time.Now()
	if q.Day == "" {
		q.Day = now.Format(scheduling.DayFormat)
	}
	appts, shortIDs, err := u.fetchFiltered(ctx, q, now)
	if err != nil {
		return nil, err
	}

	colors := u.registry.Colors(ctx)

	type timed struct {
		start time.Time
		resp  dto.AppointmentResponse
	}
	entries := make([]timed, 0, len(appts))
	for i := range appts {
		appt := &appts[i]
		shortID := ""
		if appt.PatientID != nil {
			shortID = shortIDs[appt.PatientID.String()]
		}
		resp := converter.AppointmentToResponse(appt, shortID, converter.ColorFor(colors, appt.DoctorID), now)
		entries = append(entries, timed{start: appt.StartsAt, resp: *resp})
	}

	binned := scheduling.BinByHour(entries, func(e timed) time.Time { return e.start })
	blocks := make([]dto.TimelineBlock, len(binned))
	for i, block := range binned {
		blocks[i].Hour = block.Hour
		blocks[i].Entries = make([]dto.AppointmentResponse, 0, len(block.Entries))
		for _, entry := range block.Entries {
			blocks[i].Entries = append(blocks[i].Entries, entry.resp)
		}
	}

	return &dto.TimelineResponse{Day: q.Day, Blocks: blocks}, nil
}

// fetchFiltered runs the shared read path: range query, bulk short-id
// lookup, search filter, show filter.
func (u *appointmentUsecase) fetchFiltered(ctx context.Context, q ListQuery, now time.Time) ([]entity.Appointment, map[string]string, error) {
	db := u.db.WithContext(ctx)
	if !u.apptRepo.HasSchema(db) {
		return nil, nil, ErrScheduleNotProvisioned
	}

	if q.Day == "" {
		q.Day = now.Format(scheduling.DayFormat)
	}
	from, to, err := dayRange(q.Day, q.EndDay)
	if err != nil {
		return nil, nil, err
	}

	appts, err := u.apptRepo.FindRange(db, from, to, q.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, nil, err
	}

	shortIDs, err := bulkShortIDs(db, u.patients, appts)
	if err != nil {
		u.log.Warnf("Failed to bulk-load patient short ids: %+v", err)
		return nil, nil, err
	}

	appts = filterSearch(appts, shortIDs, q.Search)
	appts = filterShow(appts, q.Show, now)
	return appts, shortIDs, nil
}

// checkConflict fetches the doctor's bookings intersecting the grace-widened
// window, holding them FOR UPDATE, and runs the pure conflict decision over
// them. Must be called inside the caller's transaction.
func (u *appointmentUsecase) checkConflict(tx *gorm.DB, doctorID string, candidate scheduling.Interval, excludeID uuid.UUID) error {
	window := candidate.WithGrace(u.grace())
	locked := tx.Clauses(clause.Locking{Strength: "UPDATE"})
	existing, err := u.apptRepo.FindWindow(locked, doctorID, window.Start, window.End, excludeID)
	if err != nil {
		u.log.Warnf("Failed conflict query for doctor %s: %+v", doctorID, err)
		return err
	}

	booked := make([]scheduling.BookedSlot, 0, len(existing))
	for i := range existing {
		booked = append(booked, scheduling.BookedSlot{
			ID:       existing[i].ID,
			Title:    existing[i].Title,
			Interval: scheduling.Interval{Start: existing[i].StartsAt, End: existing[i].EndsAt},
		})
	}

	if blocking := scheduling.FindConflict(booked, candidate, u.grace(), excludeID); blocking != nil {
		return &OverlapError{ConflictingID: blocking.ID, ConflictingTitle: blocking.Title}
	}
	return nil
}

// resolvePatient mirrors the directory resolution order: exact id first,
// then the free-text lookup. Display fields fall back field-by-field to the
// submitted values, so a staff-typed phone survives a directory row without
// one. The resolved values are snapshots; they do not track later directory
// edits.
func (u *appointmentUsecase) resolvePatient(tx *gorm.DB, req *dto.CreateAppointmentRequest) (*uuid.UUID, string, *string, error) {
	submittedName := strings.TrimSpace(req.PatientName)
	submittedPhone := strings.TrimSpace(req.PatientPhone)

	var resolved *entity.Patient
	if idStr := strings.TrimSpace(req.PatientID); idStr != "" {
		if pid, err := uuid.Parse(idStr); err == nil {
			patient, err := u.patients.FindByID(tx, pid)
			if err != nil {
				return nil, "", nil, err
			}
			resolved = patient
		}
	}
	if resolved == nil {
		if lookup := strings.TrimSpace(req.PatientLookup); lookup != "" {
			patient, err := u.patients.Resolve(tx, lookup)
			if err != nil {
				return nil, "", nil, err
			}
			resolved = patient
		}
	}

	if resolved != nil {
		name := resolved.FullName
		if name == "" {
			name = submittedName
		}
		if name == "" {
			name = "—"
		}
		phone := resolved.Phone
		if phone == nil || strings.TrimSpace(*phone) == "" {
			phone = optional(submittedPhone)
		}
		return &resolved.ID, name, phone, nil
	}

	displayName := submittedName
	if displayName == "" {
		displayName = "—"
	}
	return nil, displayName, optional(submittedPhone), nil
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
