package models

import "time"

type Pet struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:50;not null" json:"species"`
	Breed   string `gorm:"size:100" json:"breed"`

	// "macho" ou "hembra"
	Gender      string  `gorm:"size:10" json:"gender"`
	DateOfBirth string  `gorm:"size:10" json:"date_of_birth"`
	Weight      float64 `json:"weight"`
	Color       string  `gorm:"size:50" json:"color"`

	MicrochipNumber    string `gorm:"size:50" json:"microchip_number"`
	MedicalHistory     string `gorm:"type:text" json:"medical_history"`
	Allergies          string `gorm:"type:text" json:"allergies"`
	CurrentMedications string `gorm:"type:text" json:"current_medications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
