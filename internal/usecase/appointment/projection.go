package appointment

import (
	"github.com/VetCareCL/vetcare-api/internal/dto"
	"github.com/VetCareCL/vetcare-api/internal/models"
)

func toDetailDTO(ap *models.Appointment) dto.AppointmentDetailDTO {
	return dto.AppointmentDetailDTO{
		ID:                         ap.ID,
		ServiceName:                ap.Service.Name,
		VeterinarianName:           ap.Veterinarian.FullName(),
		VeterinarianSpecialization: ap.Veterinarian.Specialization,
		AppointmentDate:            ap.AppointmentDate + " " + ap.AppointmentTime,
		PetName:                    ap.Pet.Name,
		PetSpecies:                 ap.Pet.Species,
		Status:                     ap.Status,
		PaymentStatus:              ap.PaymentStatus,
		Notes:                      ap.Notes,
		Price:                      ap.Service.Price,
	}
}
