package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/audit"
	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/models"
	"github.com/VetCareCL/vetcare-api/internal/timezone"
	"github.com/VetCareCL/vetcare-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	PetID          uint
	VeterinarianID uint
	ServiceID      uint

	Date    string
	Time    string
	Address string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	if in.PetID == 0 || in.VeterinarianID == 0 || in.ServiceID == 0 ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("incomplete_request")
	}

	// --------------------------------------------------
	// 2. Formato estrito de data e hora
	// --------------------------------------------------
	if !validators.IsCalendarDate(in.Date) || !validators.IsClockTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Estritamente no futuro (agora exato é rejeitado)
	// --------------------------------------------------
	if !start.After(uc.now()) {
		return nil, httperr.ErrBusiness("past_date_time")
	}

	// --------------------------------------------------
	// 4. Pet do próprio usuário (filtro composto, sem vazar existência)
	// --------------------------------------------------
	pet, err := uc.repo.GetPetForUser(ctx, in.PetID, in.UserID)
	if err != nil {
		// só not-found vira erro de negócio; falha de infra sobe crua (5xx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("pet_not_found_or_forbidden")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Veterinário ativo
	// --------------------------------------------------
	vet, err := uc.repo.GetActiveVeterinarian(ctx, in.VeterinarianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("veterinarian_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Serviço ativo — o preço é congelado aqui
	// --------------------------------------------------
	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Endereço: explícito → cadastro do usuário → sentinel
	// --------------------------------------------------
	userAddress := ""
	if in.Address == "" {
		if user, err := uc.repo.GetUser(ctx, in.UserID); err == nil {
			userAddress = user.Address
		}
	}
	address := domain.ResolveAddress(in.Address, userAddress)

	// --------------------------------------------------
	// 8. Conflito de slot + insert em uma unidade atômica
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          in.UserID,
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		ServiceID:       svc.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		PaymentStatus:   string(domain.InitialPaymentStatus()),
		Address:         address,
		Notes:           domain.ResolveNotes(in.Notes),
		TotalAmount:     svc.Price,
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
