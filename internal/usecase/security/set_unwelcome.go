package security

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	"github.com/BruksfildServices01/barber-chain/internal/auth"
	"github.com/BruksfildServices01/barber-chain/internal/cache"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	domsecurity "github.com/BruksfildServices01/barber-chain/internal/domain/security"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

type SetUnwelcome struct {
	repo       domain.Repository
	flagsCache *cache.SecurityFlagsCache
	audit      *audit.Dispatcher
	log        zerolog.Logger
}

func NewSetUnwelcome(
	repo domain.Repository,
	flagsCache *cache.SecurityFlagsCache,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *SetUnwelcome {
	return &SetUnwelcome{
		repo:       repo,
		flagsCache: flagsCache,
		audit:      audit,
		log:        log,
	}
}

// Execute seta ou limpa o flag manual de cliente não-bem-vindo. Flag
// independente do ledger de fraude; só admin pode mexer.
func (uc *SetUnwelcome) Execute(
	ctx context.Context,
	actor auth.Actor,
	clientID uint,
	unwelcome bool,
	reason string,
) error {

	if !actor.IsAdmin() {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if unwelcome && strings.TrimSpace(reason) == "" {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		client, err := tx.GetClientForUpdate(ctx, clientID)
		if err != nil {
			return err
		}

		if unwelcome {
			domsecurity.MarkUnwelcome(client, reason, timezone.Now())
		} else {
			domsecurity.ClearUnwelcome(client)
		}

		return tx.SaveClient(ctx, client)
	})
	if err != nil {
		return err
	}

	if err := uc.flagsCache.Invalidate(ctx, clientID); err != nil {
		uc.log.Warn().Err(err).Uint("client_id", clientID).
			Msg("security flags cache invalidation failed")
	}

	action := "client_marked_unwelcome"
	if !unwelcome {
		action = "client_unwelcome_cleared"
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: actor.BranchID,
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "client",
		EntityID: &clientID,
		Metadata: map[string]any{"reason": reason},
	})

	return nil
}
