package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-chain/internal/dto"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/httpresp"
	"github.com/BruksfildServices01/barber-chain/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-chain/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.Create
	cancelUC      *ucAppointment.Cancel
	completeUC    *ucAppointment.Complete
	listPendingUC *ucAppointment.ListPending
}

func NewAppointmentHandler(
	createUC *ucAppointment.Create,
	cancelUC *ucAppointment.Cancel,
	completeUC *ucAppointment.Complete,
	listPendingUC *ucAppointment.ListPending,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listPendingUC: listPendingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceIDs []uint `json:"service_ids" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	PaymentMethod string `json:"payment_method"`
	VoucherNumber string `json:"voucher_number"`
	VoucherURL    string `json:"voucher_url"`

	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		BranchID:      branchID,
		BarberID:      req.BarberID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		Time:          req.Time,
		PaymentMethod: req.PaymentMethod,
		VoucherNumber: req.VoucherNumber,
		VoucherURL:    req.VoucherURL,
		Notes:         req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST PENDING (dashboards)
// ======================================================

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	var statuses []string
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	aps, err := h.listPendingUC.Execute(c.Request.Context(), branchID, statuses)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		}
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
