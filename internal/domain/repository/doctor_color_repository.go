package repository

import (
	"clinic-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorColorRepository interface {
	FindAll(db *gorm.DB) ([]entity.DoctorColor, error)
	Upsert(db *gorm.DB, color *entity.DoctorColor) error
	Delete(db *gorm.DB, doctorID string) error
}
