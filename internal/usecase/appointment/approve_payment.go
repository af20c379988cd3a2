package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type ApprovePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApprovePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApprovePayment {
	return &ApprovePayment{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirma um agendamento em pending_payment. Idempotente:
// reaprovar um agendamento já confirmado devolve o registro sem alterar
// os metadados da primeira verificação.
func (uc *ApprovePayment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	if err := requireModerator(actor); err != nil {
		return nil, err
	}

	branch, err := uc.repo.GetBranchByID(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}

	var result *models.Appointment
	var changed bool

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID, actor.BranchID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(branch.Timezone)
		changed, err = domain.ApprovePayment(ap, actor.Username, now)
		if err != nil {
			return err
		}

		if changed {
			if err := tx.UpdateAppointment(ctx, ap); err != nil {
				return err
			}
		}

		result = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.IncTransition(string(domain.StatusPendingPayment), string(domain.StatusConfirmed))

		uc.audit.Dispatch(audit.Event{
			BranchID: actor.BranchID,
			UserID:   &actor.UserID,
			Action:   "payment_approved",
			Entity:   "appointment",
			EntityID: &result.ID,
		})
	}

	return result, nil
}
