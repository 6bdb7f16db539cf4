package repository

import (
	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientDirectory is the read-only port onto the externally owned patient
// records. The scheduler attaches denormalized references; it never creates,
// edits, or deletes patients.
type PatientDirectory interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// Resolve matches a free-text lookup against short id or full name,
	// case-insensitively, newest record first.
	Resolve(db *gorm.DB, lookup string) (*entity.Patient, error)
	// ShortIDs bulk-loads short ids for list enrichment.
	ShortIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
