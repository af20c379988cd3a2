package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type Reject struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReject(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reject {
	return &Reject{
		repo:  repo,
		audit: audit,
	}
}

// Execute recusa um agendamento aguardando revisão. O motivo vem da
// enumeração fechada de reasons.go. Rejeição de revisão nunca toca o
// ledger de fraude — só vouchers recusados fazem isso.
func (uc *Reject) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	reason domain.RejectionReason,
	notes string,
) (*models.Appointment, error) {

	if err := domain.ValidRejectionReason(reason); err != nil {
		return nil, err
	}

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
		if err := domain.Reject(ap, actor.Username, reason, notes, now); err != nil {
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

	metrics.IncTransition(from, string(domain.StatusRejected))

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "appointment_rejected",
		Entity:   "appointment",
		EntityID: &result.ID,
		Metadata: map[string]any{"reason": string(reason)},
	})

	return result, nil
}
