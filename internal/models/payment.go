package models

import "time"

// Payment is an append-only ledger row; the appointment's payment_status
// column remains the read-facing record.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`
	UserID        uint `gorm:"index;not null" json:"user_id"`

	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:30" json:"payment_method"`
	PaymentStatus string  `gorm:"size:20" json:"payment_status"`

	TransactionID string    `gorm:"size:36" json:"transaction_id"`
	PaymentDate   time.Time `json:"payment_date"`

	CreatedAt time.Time `json:"created_at"`
}
