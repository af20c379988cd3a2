package security

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-chain/internal/cache"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
)

type GetFlags struct {
	repo       domain.Repository
	flagsCache *cache.SecurityFlagsCache
	log        zerolog.Logger
}

func NewGetFlags(
	repo domain.Repository,
	flagsCache *cache.SecurityFlagsCache,
	log zerolog.Logger,
) *GetFlags {
	return &GetFlags{
		repo:       repo,
		flagsCache: flagsCache,
		log:        log,
	}
}

// Execute devolve os flags de segurança do cliente, cache-aside: redis
// primeiro, banco no miss. Falha de cache nunca derruba a leitura.
func (uc *GetFlags) Execute(
	ctx context.Context,
	clientID uint,
) (*cache.SecurityFlags, error) {

	if flags, err := uc.flagsCache.Get(ctx, clientID); err != nil {
		uc.log.Warn().Err(err).Uint("client_id", clientID).Msg("security flags cache read failed")
	} else if flags != nil {
		return flags, nil
	}

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	flags := &cache.SecurityFlags{
		ClientID:           client.ID,
		IsFlagged:          client.IsFlagged,
		FalseVouchersCount: client.FalseVouchersCount,
		Blacklisted:        client.Blacklisted,
		LastRejectionDate:  client.LastRejectionDate,
		IsUnwelcome:        client.IsUnwelcome,
	}

	if err := uc.flagsCache.Set(ctx, flags); err != nil {
		uc.log.Warn().Err(err).Uint("client_id", clientID).Msg("security flags cache write failed")
	}

	return flags, nil
}
