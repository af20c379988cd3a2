package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/httpresp"
	"github.com/BruksfildServices01/barber-chain/internal/middleware"
	ucSecurity "github.com/BruksfildServices01/barber-chain/internal/usecase/security"
)

type ClientSecurityHandler struct {
	getFlagsUC     *ucSecurity.GetFlags
	clearFlagsUC   *ucSecurity.ClearFlags
	setUnwelcomeUC *ucSecurity.SetUnwelcome
}

func NewClientSecurityHandler(
	getFlagsUC *ucSecurity.GetFlags,
	clearFlagsUC *ucSecurity.ClearFlags,
	setUnwelcomeUC *ucSecurity.SetUnwelcome,
) *ClientSecurityHandler {
	return &ClientSecurityHandler{
		getFlagsUC:     getFlagsUC,
		clearFlagsUC:   clearFlagsUC,
		setUnwelcomeUC: setUnwelcomeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetUnwelcomeRequest struct {
	Unwelcome bool   `json:"unwelcome"`
	Reason    string `json:"reason"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ClientSecurityHandler) GetFlags(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	flags, err := h.getFlagsUC.Execute(c.Request.Context(), id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_get_security_flags", "Erro ao consultar flags.")
		}
		return
	}

	httpresp.OK(c, flags)
}

func (h *ClientSecurityHandler) ClearFlags(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.clearFlagsUC.Execute(c.Request.Context(), actor, id); err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_clear_security_flags", "Erro ao limpar flags.")
		}
		return
	}

	httpresp.NoContent(c)
}

func (h *ClientSecurityHandler) SetUnwelcome(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetUnwelcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.setUnwelcomeUC.Execute(c.Request.Context(), actor, id, req.Unwelcome, req.Reason); err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_set_unwelcome", "Erro ao atualizar cliente.")
		}
		return
	}

	httpresp.NoContent(c)
}
