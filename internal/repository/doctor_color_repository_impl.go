package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorColorRepository struct{}

func NewDoctorColorRepository() domainRepo.DoctorColorRepository {
	return &doctorColorRepository{}
}

func (r *doctorColorRepository) FindAll(db *gorm.DB) ([]entity.DoctorColor, error) {
	var colors []entity.DoctorColor
	if err := db.Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *doctorColorRepository) Upsert(db *gorm.DB, color *entity.DoctorColor) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"color"}),
	}).Create(color).Error
}

func (r *doctorColorRepository) Delete(db *gorm.DB, doctorID string) error {
	return db.Where("doctor_id = ?", doctorID).Delete(&entity.DoctorColor{}).Error
}
