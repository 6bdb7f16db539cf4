package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient mirrors a row owned by the patient directory. The scheduler only
// reads this table to resolve an optional booking reference; it never writes.
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShortID   string    `gorm:"type:varchar(20);index" json:"short_id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}
