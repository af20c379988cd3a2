package appointment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	"github.com/BruksfildServices01/barber-chain/internal/cache"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/domain/security"
	"github.com/BruksfildServices01/barber-chain/internal/fraud"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RejectPaymentInput struct {
	AppointmentID uint
	Reason        string

	// FraudConfirmed permite ao verificador marcar fraude explicitamente,
	// independente do classificador de palavras-chave.
	FraudConfirmed bool
}

// ======================================================
// USE CASE
// ======================================================

type RejectPayment struct {
	repo       domain.Repository
	ledger     *security.Ledger
	classifier fraud.Classifier
	flagsCache *cache.SecurityFlagsCache
	audit      *audit.Dispatcher
	log        zerolog.Logger
}

func NewRejectPayment(
	repo domain.Repository,
	ledger *security.Ledger,
	classifier fraud.Classifier,
	flagsCache *cache.SecurityFlagsCache,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *RejectPayment {
	return &RejectPayment{
		repo:       repo,
		ledger:     ledger,
		classifier: classifier,
		flagsCache: flagsCache,
		audit:      audit,
		log:        log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cancela um agendamento em pending_payment por voucher recusado.
// Cancelamento do agendamento, escrita no ledger do cliente e linha de
// auditoria do voucher compartilham UMA transação: nunca existe
// agendamento cancelado sem o flag correspondente, nem flag sem
// cancelamento.
func (uc *RejectPayment) Execute(
	ctx context.Context,
	actor Actor,
	in RejectPaymentInput,
) (*models.Appointment, error) {

	if strings.TrimSpace(in.Reason) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if err := requireModerator(actor); err != nil {
		return nil, err
	}

	branch, err := uc.repo.GetBranchByID(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}

	fraudulent := in.FraudConfirmed || uc.classifier.Fraudulent(in.Reason)

	var result *models.Appointment
	var client *models.Client

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, in.AppointmentID, actor.BranchID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(branch.Timezone)
		if err := domain.RejectPayment(ap, in.Reason, actor.Username, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if fraudulent {
			client, err = tx.GetClientForUpdate(ctx, ap.ClientID)
			if err != nil {
				return err
			}

			flag := uc.ledger.FlagFalseVoucher(client, in.Reason, security.Evidence{
				AppointmentID: &ap.ID,
				VoucherNumber: ap.VoucherNumber,
				Amount:        ap.TotalPrice,
				PaymentMethod: ap.PaymentMethod,
				VerifiedBy:    actor.Username,
			}, now)

			if err := tx.SaveClient(ctx, client); err != nil {
				return err
			}
			if err := tx.CreateVoucherFlag(ctx, flag); err != nil {
				return err
			}
		}

		result = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTransition(string(domain.StatusPendingPayment), string(domain.StatusCancelled))

	if fraudulent {
		metrics.IncFraudFlag()
		if client.Blacklisted {
			metrics.IncBlacklist()
		}

		if err := uc.flagsCache.Invalidate(ctx, client.ID); err != nil {
			uc.log.Warn().Err(err).Uint("client_id", client.ID).
				Msg("security flags cache invalidation failed")
		}

		uc.log.Info().
			Uint("client_id", client.ID).
			Uint("appointment_id", result.ID).
			Int("false_vouchers", client.FalseVouchersCount).
			Bool("blacklisted", client.Blacklisted).
			Msg("false voucher flagged")
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "payment_rejected",
		Entity:   "appointment",
		EntityID: &result.ID,
		Metadata: map[string]any{
			"reason":     in.Reason,
			"fraudulent": fraudulent,
		},
	})

	return result, nil
}
