package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
)

type ListPending struct {
	repo domain.Repository
}

func NewListPending(repo domain.Repository) *ListPending {
	return &ListPending{repo: repo}
}

// Execute lista agendamentos aguardando alguma ação (dashboards).
// Somente leitura, sem regra de negócio. Sem filtro explícito devolve
// tudo que não está em estado terminal nem confirmado.
func (uc *ListPending) Execute(
	ctx context.Context,
	branchID uint,
	statuses []string,
) ([]models.Appointment, error) {

	if len(statuses) == 0 {
		statuses = []string{
			string(domain.StatusPending),
			string(domain.StatusUnderReview),
			string(domain.StatusPendingPayment),
		}
	}

	for _, s := range statuses {
		if !domain.Valid(domain.Status(s)) {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
	}

	return uc.repo.ListByStatus(ctx, branchID, statuses)
}
