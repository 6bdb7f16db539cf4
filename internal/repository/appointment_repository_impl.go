package repository

import (
	"errors"
	"time"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appt *entity.Appointment) error {
	return db.Create(appt).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := db.Where("id = ?", id).First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

// FindWindow mirrors the half-open overlap test in SQL as a coarse prefilter.
// Locking is the caller's choice: write paths pass a handle carrying a
// FOR UPDATE clause, read-only previews pass the plain handle.
func (r *appointmentRepository) FindWindow(db *gorm.DB, doctorID string, windowStart, windowEnd time.Time, excludeID uuid.UUID) ([]entity.Appointment, error) {
	query := db.Where("doctor_id = ? AND starts_at < ? AND ends_at > ?", doctorID, windowEnd, windowStart)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var appts []entity.Appointment
	if err := query.Order("starts_at ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) FindRange(db *gorm.DB, from, to time.Time, doctorID string) ([]entity.Appointment, error) {
	query := db.Where("starts_at >= ? AND starts_at <= ?", from, to)
	if doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}

	var appts []entity.Appointment
	if err := query.Order("starts_at ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appt *entity.Appointment) error {
	return db.Save(appt).Error
}

// UpdateStatus stamps the new lifecycle status. Returns affected rows so the
// caller can distinguish a missing id without a prior read.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) HasSchema(db *gorm.DB) bool {
	return db.Migrator().HasTable(&entity.Appointment{})
}
