package models

import "time"

type Veterinarian struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`

	LicenseNumber   string `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	Specialization  string `gorm:"size:100" json:"specialization"`
	YearsExperience int    `json:"years_experience"`
	Education       string `gorm:"size:255" json:"education"`
	Bio             string `gorm:"type:text" json:"bio"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Veterinarian) FullName() string {
	return v.FirstName + " " + v.LastName
}
