package appointment

import (
	"context"

	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(
	repo domain.Repository,
) *ListMyAppointments {
	return &ListMyAppointments{
		repo: repo,
	}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentDetailDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDetailDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, toDetailDTO(&appointments[i]))
	}

	return out, nil
}
