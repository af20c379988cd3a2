package security

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	"github.com/BruksfildServices01/barber-chain/internal/auth"
	"github.com/BruksfildServices01/barber-chain/internal/cache"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	domsecurity "github.com/BruksfildServices01/barber-chain/internal/domain/security"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
)

type ClearFlags struct {
	repo       domain.Repository
	ledger     *domsecurity.Ledger
	flagsCache *cache.SecurityFlagsCache
	audit      *audit.Dispatcher
	log        zerolog.Logger
}

func NewClearFlags(
	repo domain.Repository,
	ledger *domsecurity.Ledger,
	flagsCache *cache.SecurityFlagsCache,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *ClearFlags {
	return &ClearFlags{
		repo:       repo,
		ledger:     ledger,
		flagsCache: flagsCache,
		audit:      audit,
		log:        log,
	}
}

// Execute zera o ledger de fraude do cliente. Operação administrativa
// manual, independente do status de qualquer agendamento.
func (uc *ClearFlags) Execute(
	ctx context.Context,
	actor auth.Actor,
	clientID uint,
) error {

	if !actor.IsAdmin() {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		client, err := tx.GetClientForUpdate(ctx, clientID)
		if err != nil {
			return err
		}

		uc.ledger.Clear(client)
		return tx.SaveClient(ctx, client)
	})
	if err != nil {
		return err
	}

	if err := uc.flagsCache.Invalidate(ctx, clientID); err != nil {
		uc.log.Warn().Err(err).Uint("client_id", clientID).
			Msg("security flags cache invalidation failed")
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   "security_flags_cleared",
		Entity:   "client",
		EntityID: &clientID,
	})

	return nil
}
