package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/audit"
	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/dto"
	"github.com/VetCareCL/vetcare-api/internal/httperr"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	newStatus string,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	previous := ap.Status
	ap.Status = newStatus

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   newStatus,
		},
	})

	detail, err := uc.repo.GetAppointmentByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	out := toDetailDTO(detail)
	return &out, nil
}
