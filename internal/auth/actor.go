package auth

import "github.com/BruksfildServices01/barber-chain/internal/models"

// Actor é quem executa a operação, extraído das claims do JWT pelo
// middleware. A autorização vem do papel do ator, nunca dos dados do
// agendamento.
type Actor struct {
	UserID   uint
	Username string
	BranchID uint
	Role     string
}

// CanModerate: aprovação e verificação de pagamento exigem autoridade
// administrativa sobre a filial.
func (a Actor) CanModerate() bool {
	switch a.Role {
	case models.RoleReception, models.RoleBranchAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin: ações de segurança sobre clientes (limpar ledger, unwelcome).
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleBranchAdmin || a.Role == models.RoleSuperAdmin
}
