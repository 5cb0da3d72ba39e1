package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VetCareCL/vetcare-api/internal/httperr"
)

// writeBusinessError traduz o erro tagueado do core para o status HTTP e
// a mensagem da API. Nenhum erro cru de infraestrutura chega na resposta.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Error interno del servidor.")
		return
	}

	switch be.Code {

	case "incomplete_request":
		httperr.BadRequest(c, be.Code, "Datos incompletos para crear la cita.")

	case "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "La fecha u hora no tiene un formato válido.")

	case "past_date_time":
		httperr.BadRequest(c, be.Code, "La cita debe agendarse en el futuro.")

	case "invalid_status":
		httperr.BadRequest(c, be.Code, "Estado de cita inválido.")

	case "invalid_payment_status":
		httperr.BadRequest(c, be.Code, "Estado de pago inválido.")

	case "pet_not_found_or_forbidden":
		httperr.Forbidden(c, be.Code, "Mascota no encontrada o no autorizada.")

	case "veterinarian_not_found":
		httperr.NotFound(c, be.Code, "Veterinario no encontrado.")

	case "service_not_found":
		httperr.NotFound(c, be.Code, "Servicio no encontrado.")

	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Cita no encontrada.")

	case "slot_conflict":
		httperr.Conflict(c, be.Code, "El veterinario ya tiene una cita en ese horario. Elige otra hora.")

	default:
		httperr.Internal(c, be.Code, "Error interno del servidor.")
	}
}
