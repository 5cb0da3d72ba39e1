package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/audit"
	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/dto"
	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/models"
	"github.com/VetCareCL/vetcare-api/internal/timezone"
)

type SetPaymentStatusInput struct {
	UserID        uint
	AppointmentID uint

	PaymentStatus string
	PaymentMethod string
	PaymentAmount float64
}

type SetPaymentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSetPaymentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetPaymentStatus {
	return &SetPaymentStatus{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *SetPaymentStatus) Execute(
	ctx context.Context,
	in SetPaymentStatusInput,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if !domain.IsValidPaymentStatus(in.PaymentStatus) {
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	ap.PaymentStatus = in.PaymentStatus

	// Registro append-only no ledger de pagamentos; a coluna payment_status
	// da cita continua sendo o registro de leitura. As duas escritas vão
	// juntas: nunca fica status novo sem a linha do ledger.
	amount := in.PaymentAmount
	if amount == 0 {
		amount = ap.TotalAmount
	}

	payment := &models.Payment{
		AppointmentID: ap.ID,
		UserID:        in.UserID,
		Amount:        amount,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		TransactionID: uuid.NewString(),
		PaymentDate:   uc.now(),
	}

	if err := uc.repo.RecordPayment(ctx, ap, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_payment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"payment_status": in.PaymentStatus,
			"payment_method": in.PaymentMethod,
			"amount":         amount,
			"transaction_id": payment.TransactionID,
		},
	})

	detail, err := uc.repo.GetAppointmentByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	out := toDetailDTO(detail)
	return &out, nil
}
