package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type Complete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewComplete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Complete {
	return &Complete{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca um agendamento confirmado como atendido.
func (uc *Complete) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	branch, err := uc.repo.GetBranchByID(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}

	var result *models.Appointment

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID, actor.BranchID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(branch.Timezone)
		if err := domain.Complete(ap, now); err != nil {
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

	metrics.IncTransition(string(domain.StatusConfirmed), string(domain.StatusCompleted))

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &result.ID,
	})

	return result, nil
}
