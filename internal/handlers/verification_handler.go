package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/httpresp"
	"github.com/BruksfildServices01/barber-chain/internal/middleware"
	"github.com/BruksfildServices01/barber-chain/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barber-chain/internal/usecase/appointment"
)

// VerificationHandler expõe os dois fluxos de resolução: aprovação por
// revisão e verificação de voucher de pagamento.
type VerificationHandler struct {
	openReviewUC     *ucAppointment.OpenReview
	approveUC        *ucAppointment.Approve
	rejectUC         *ucAppointment.Reject
	approvePaymentUC *ucAppointment.ApprovePayment
	rejectPaymentUC  *ucAppointment.RejectPayment
	voucherStore     *storage.VoucherStore
}

func NewVerificationHandler(
	openReviewUC *ucAppointment.OpenReview,
	approveUC *ucAppointment.Approve,
	rejectUC *ucAppointment.Reject,
	approvePaymentUC *ucAppointment.ApprovePayment,
	rejectPaymentUC *ucAppointment.RejectPayment,
	voucherStore *storage.VoucherStore,
) *VerificationHandler {
	return &VerificationHandler{
		openReviewUC:     openReviewUC,
		approveUC:        approveUC,
		rejectUC:         rejectUC,
		approvePaymentUC: approvePaymentUC,
		rejectPaymentUC:  rejectPaymentUC,
		voucherStore:     voucherStore,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ApproveRequest struct {
	Notes string `json:"notes"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

type RejectPaymentRequest struct {
	Reason         string `json:"reason" binding:"required"`
	FraudConfirmed bool   `json:"fraud_confirmed"`
}

// ======================================================
// APPROVAL WORKFLOW
// ======================================================

func (h *VerificationHandler) OpenReview(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.openReviewUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_open_review", "Erro ao abrir revisão.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *VerificationHandler) Approve(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ApproveRequest
	_ = c.ShouldBindJSON(&req) // notes é opcional

	ap, err := h.approveUC.Execute(c.Request.Context(), actor, id, req.Notes)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_approve", "Erro ao aprovar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *VerificationHandler) Reject(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Motivo obrigatório.")
		return
	}

	ap, err := h.rejectUC.Execute(
		c.Request.Context(),
		actor,
		id,
		domain.RejectionReason(req.Reason),
		req.Notes,
	)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_reject", "Erro ao recusar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PAYMENT VERIFICATION WORKFLOW
// ======================================================

func (h *VerificationHandler) ApprovePayment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.approvePaymentUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_approve_payment", "Erro ao aprovar pagamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *VerificationHandler) RejectPayment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Motivo obrigatório.")
		return
	}

	ap, err := h.rejectPaymentUC.Execute(c.Request.Context(), actor, ucAppointment.RejectPaymentInput{
		AppointmentID:  id,
		Reason:         req.Reason,
		FraudConfirmed: req.FraudConfirmed,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_reject_payment", "Erro ao recusar pagamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// VOUCHER UPLOAD
// ======================================================

// UploadVoucher recebe a foto do comprovante, normaliza e grava no
// bucket. A URL retornada vai em voucher_url na criação do agendamento.
func (h *VerificationHandler) UploadVoucher(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	file, _, err := c.Request.FormFile("voucher")
	if err != nil {
		httperr.BadRequest(c, "missing_voucher_file", "Arquivo do voucher obrigatório.")
		return
	}
	defer file.Close()

	url, err := h.voucherStore.Upload(c.Request.Context(), id, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_voucher", "Erro ao subir voucher.")
		return
	}

	httpresp.OK(c, gin.H{"voucher_url": url})
}
