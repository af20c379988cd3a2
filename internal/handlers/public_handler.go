package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/httpresp"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-chain/internal/usecase/appointment"
)

// PublicHandler atende o fluxo de booking do cliente (sem login),
// endereçado pelo slug da filial.
type PublicHandler struct {
	db       *gorm.DB
	createUC *ucAppointment.Create
}

func NewPublicHandler(db *gorm.DB, createUC *ucAppointment.Create) *PublicHandler {
	return &PublicHandler{db: db, createUC: createUC}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var branch models.Branch
	if err := h.db.Where("slug = ?", slug).First(&branch).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Filial não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("branch_id = ? AND active = true", branch.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var branch models.Branch
	if err := h.db.Where("slug = ?", slug).First(&branch).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Filial não encontrada.")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		BranchID:      branch.ID,
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
