package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type Approve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApprove(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Approve {
	return &Approve{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirma um agendamento aguardando revisão (pending/under_review).
func (uc *Approve) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	notes string,
) (*models.Appointment, error) {

	if err := requireModerator(actor); err != nil {
		return nil, err
	}

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
		if err := domain.Approve(ap, actor.Username, notes, now); err != nil {
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

	metrics.IncTransition(from, string(domain.StatusConfirmed))

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "appointment_approved",
		Entity:   "appointment",
		EntityID: &result.ID,
	})

	return result, nil
}
