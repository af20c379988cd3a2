package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela qualquer agendamento não-terminal. Cancelamento nunca
// toca o ledger de fraude; só rejeição de voucher faz isso.
func (uc *Cancel) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	branch, err := uc.repo.GetBranchByID(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}

	var result *models.Appointment
	var from string

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID, actor.BranchID)
		if err != nil {
			return err
		}

		from = ap.Status
		now := timezone.NowIn(branch.Timezone)
		if err := domain.Cancel(ap, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		result = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTransition(from, string(domain.StatusCancelled))

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &result.ID,
	})

	return result, nil
}
