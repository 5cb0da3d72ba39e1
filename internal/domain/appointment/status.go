package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "programada"
	StatusConfirmed  Status = "confirmada"
	StatusInProgress Status = "en_progreso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// InitialStatus é o status de toda cita recém-criada.
func InitialStatus() Status {
	return StatusScheduled
}

// IsValidStatus aceita somente os cinco valores do enum; qualquer outro
// string é rejeitado. Não há grafo de transição: um status válido
// sobrescreve o anterior incondicionalmente.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
