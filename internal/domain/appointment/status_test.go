package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"programada", "confirmada", "en_progreso", "completada", "cancelada"} {
		assert.True(t, IsValidStatus(s), "expected %q to be valid", s)
	}

	for _, s := range []string{"", "Programada", "scheduled", "confirmado", "en progreso", "done"} {
		assert.False(t, IsValidStatus(s), "expected %q to be invalid", s)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus())
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "refunded"} {
		assert.True(t, IsValidPaymentStatus(s), "expected %q to be valid", s)
	}

	for _, s := range []string{"", "Paid", "pagado", "completado", "cancelled"} {
		assert.False(t, IsValidPaymentStatus(s), "expected %q to be invalid", s)
	}
}

func TestInitialPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentPending, InitialPaymentStatus())
}
