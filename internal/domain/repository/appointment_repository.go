package repository

import (
	"time"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appt *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindWindow returns the doctor's bookings whose span intersects
	// [windowStart, windowEnd), excluding excludeID when non-nil. Write paths
	// pass a transaction handle with a FOR UPDATE locking clause and run the
	// grace-widened conflict decision inside that transaction; read-only
	// previews pass the plain handle.
	FindWindow(db *gorm.DB, doctorID string, windowStart, windowEnd time.Time, excludeID uuid.UUID) ([]entity.Appointment, error)
	// FindRange returns appointments whose start falls within [from, to],
	// optionally restricted to one doctor, ordered by starts_at ascending.
	FindRange(db *gorm.DB, from, to time.Time, doctorID string) ([]entity.Appointment, error)
	Update(db *gorm.DB, appt *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	// HasSchema reports whether the appointments table has been provisioned.
	HasSchema(db *gorm.DB) bool
}
