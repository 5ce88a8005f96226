package entity

// Doctor is reference data maintained by staff. Doctors do not log in;
// they exist only so slots can point at them.
type Doctor struct {
	ID            int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"type:varchar(200);not null" json:"name"`
	Email         string `gorm:"type:varchar(255);not null" json:"email"`
	LicenseNumber string `gorm:"type:varchar(200);not null" json:"license_number"`
	Phone         string `gorm:"type:varchar(17)" json:"phone,omitempty"`
	SpecialtyID   int    `gorm:"not null;index" json:"specialty_id"`

	// Relationships
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Slots     []Slot    `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
