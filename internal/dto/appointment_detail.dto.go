package dto

type AppointmentDetailDTO struct {
	ID uint `json:"id"`

	ServiceName                string `json:"service_name"`
	VeterinarianName           string `json:"veterinarian_name"`
	VeterinarianSpecialization string `json:"veterinarian_specialization"`

	// "YYYY-MM-DD HH:MM", como o front espera em um campo só.
	AppointmentDate string `json:"appointment_date"`

	PetName    string `json:"pet_name"`
	PetSpecies string `json:"pet_species"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	Notes string  `json:"notes"`
	Price float64 `json:"price"`
}
