package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/middleware"
	ucAppointment "github.com/VetCareCL/vetcare-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	setStatusUC  *ucAppointment.SetStatus
	setPaymentUC *ucAppointment.SetPaymentStatus
	listUC       *ucAppointment.ListMyAppointments
	detailUC     *ucAppointment.GetAppointmentDetail
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	setStatusUC *ucAppointment.SetStatus,
	setPaymentUC *ucAppointment.SetPaymentStatus,
	listUC *ucAppointment.ListMyAppointments,
	detailUC *ucAppointment.GetAppointmentDetail,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		setStatusUC:  setStatusUC,
		setPaymentUC: setPaymentUC,
		listUC:       listUC,
		detailUC:     detailUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID           uint   `json:"pet_id"`
	VeterinarianID  uint   `json:"veterinarian_id"`
	ServiceID       uint   `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Address         string `json:"address"`
	Notes           string `json:"notes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetPaymentStatusRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	PaymentAmount float64 `json:"payment_amount"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:         userID,
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		ServiceID:      req.ServiceID,
		Date:           req.AppointmentDate,
		Time:           req.AppointmentTime,
		Address:        req.Address,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	detail, err := h.detailUC.Execute(c.Request.Context(), ap.ID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Cita creada exitosamente",
		"appointment": detail,
	})
}

// ======================================================
// LIST (projeção composta, mais recente primeiro)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointments, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// SET STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	detail, err := h.setStatusUC.Execute(c.Request.Context(), userID, appointmentID, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ======================================================
// SET PAYMENT STATUS
// ======================================================

func (h *AppointmentHandler) SetPaymentStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	detail, err := h.setPaymentUC.Execute(c.Request.Context(), ucAppointment.SetPaymentStatusInput{
		UserID:        userID,
		AppointmentID: appointmentID,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		PaymentAmount: req.PaymentAmount,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
