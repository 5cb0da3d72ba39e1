package appointment

import (
	"context"

	"github.com/VetCareCL/vetcare-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetPetForUser(
		ctx context.Context,
		petID uint,
		userID uint,
	) (*models.Pet, error)

	GetActiveVeterinarian(
		ctx context.Context,
		id uint,
	) (*models.Veterinarian, error)

	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	//
	// CreateIfSlotFree runs the slot-conflict check and the insert as one
	// atomic unit; of two concurrent calls for the same
	// (veterinarian, date, time), exactly one succeeds and the other gets
	// a "slot_conflict" business error.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RecordPayment persists the payment_status change and its ledger row
	// as one transaction; the appointment is never updated without the
	// matching ledger entry.
	RecordPayment(
		ctx context.Context,
		ap *models.Appointment,
		p *models.Payment,
	) error

	// -------- Projections --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)
}
