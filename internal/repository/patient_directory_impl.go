package repository

import (
	"errors"
	"strings"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientDirectory struct{}

func NewPatientDirectory() domainRepo.PatientDirectory {
	return &patientDirectory{}
}

func (r *patientDirectory) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientDirectory) Resolve(db *gorm.DB, lookup string) (*entity.Patient, error) {
	normalized := strings.TrimSpace(lookup)
	if normalized == "" {
		return nil, nil
	}

	var patient entity.Patient
	err := db.Where("lower(short_id) = lower(?) OR lower(full_name) = lower(?)", normalized, normalized).
		Order("created_at DESC").
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientDirectory) ShortIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	shortIDs := make(map[uuid.UUID]string)
	if len(ids) == 0 {
		return shortIDs, nil
	}

	var patients []entity.Patient
	if err := db.Select("id", "short_id").Where("id IN ?", ids).Find(&patients).Error; err != nil {
		return nil, err
	}
	for _, p := range patients {
		shortIDs[p.ID] = p.ShortID
	}
	return shortIDs, nil
}
