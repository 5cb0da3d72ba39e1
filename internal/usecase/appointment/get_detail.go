package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/dto"
	"github.com/VetCareCL/vetcare-api/internal/httperr"
)

// GetAppointmentDetail monta a projeção composta por id, sem filtro de
// dono — o controle de acesso é responsabilidade da rota chamadora.
type GetAppointmentDetail struct {
	repo domain.Repository
}

func NewGetAppointmentDetail(
	repo domain.Repository,
) *GetAppointmentDetail {
	return &GetAppointmentDetail{
		repo: repo,
	}
}

func (uc *GetAppointmentDetail) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	out := toDetailDTO(ap)
	return &out, nil
}
