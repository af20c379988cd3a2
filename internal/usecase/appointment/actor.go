package appointment

import (
	"github.com/BruksfildServices01/barber-chain/internal/auth"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
)

// Actor re-exportado para os handlers não dependerem de dois pacotes.
type Actor = auth.Actor

func requireModerator(actor Actor) error {
	if !actor.CanModerate() {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
