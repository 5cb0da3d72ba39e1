package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`

	DurationMinutes int    `json:"duration_minutes"`
	IsHomeService   bool   `gorm:"default:true" json:"is_home_service"`
	Category        string `gorm:"size:50" json:"category"`
	Requirements    string `gorm:"size:255" json:"requirements"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
