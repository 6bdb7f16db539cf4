package entity

// DoctorColor is a configured calendar color override for one provider.
// Providers without a row fall back to the default palette.
type DoctorColor struct {
	DoctorID string `gorm:"type:varchar(100);primaryKey" json:"doctor_id"`
	Color    string `gorm:"type:varchar(20);not null" json:"color"`
}

func (DoctorColor) TableName() string {
	return "doctor_colors"
}
