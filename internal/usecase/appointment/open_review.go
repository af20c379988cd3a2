package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type OpenReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewOpenReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *OpenReview {
	return &OpenReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca um agendamento pendente como em inspeção pelo revisor.
func (uc *OpenReview) Execute(
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

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID, actor.BranchID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(branch.Timezone)
		if err := domain.OpenReview(ap, now); err != nil {
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

	metrics.IncTransition(string(domain.StatusPending), string(domain.StatusUnderReview))

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "appointment_review_opened",
		Entity:   "appointment",
		EntityID: &result.ID,
	})

	return result, nil
}
