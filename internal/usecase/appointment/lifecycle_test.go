package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
)

func TestCancelUseCase(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancel(repo, newTestDispatcher())

	for _, from := range []domain.Status{
		domain.StatusPending, domain.StatusUnderReview,
		domain.StatusPendingPayment, domain.StatusConfirmed,
	} {
		ap := seedPending(repo, from)

		result, err := uc.Execute(context.Background(), barberActor(), ap.ID)
		require.NoError(t, err, string(from))
		assert.Equal(t, string(domain.StatusCancelled), result.Status)
		require.NotNil(t, result.CancelledAt)
	}

	// Terminais não se cancelam de novo.
	ap := seedPending(repo, domain.StatusCompleted)
	_, err := uc.Execute(context.Background(), barberActor(), ap.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestCompleteUseCase(t *testing.T) {
	repo := newFakeRepo()
	uc := NewComplete(repo, newTestDispatcher())

	ap := seedPending(repo, domain.StatusConfirmed)
	result, err := uc.Execute(context.Background(), barberActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), result.Status)
	require.NotNil(t, result.CompletedAt)

	// Atender sem confirmação prévia é recusado.
	ap = seedPending(repo, domain.StatusPendingPayment)
	_, err = uc.Execute(context.Background(), barberActor(), ap.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

// Cancelamento e conclusão disputando o mesmo agendamento confirmado:
// o lock de linha serializa, exatamente um vence.
func TestConcurrentCancelAndComplete(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusConfirmed)

	cancelUC := NewCancel(repo, newTestDispatcher())
	completeUC := NewComplete(repo, newTestDispatcher())

	var wg sync.WaitGroup
	var cancelErr, completeErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, cancelErr = cancelUC.Execute(context.Background(), barberActor(), ap.ID)
	}()
	go func() {
		defer wg.Done()
		_, completeErr = completeUC.Execute(context.Background(), barberActor(), ap.ID)
	}()
	wg.Wait()

	succeeded := 0
	if cancelErr == nil {
		succeeded++
	}
	if completeErr == nil {
		succeeded++
	}
	require.Equal(t, 1, succeeded, "cancel=%v complete=%v", cancelErr, completeErr)

	final := repo.appointments[ap.ID].Status
	if cancelErr == nil {
		assert.Equal(t, string(domain.StatusCancelled), final)
		assert.True(t, httperr.IsBusiness(completeErr, httperr.CodeInvalidTransition))
	} else {
		assert.Equal(t, string(domain.StatusCompleted), final)
		assert.True(t, httperr.IsBusiness(cancelErr, httperr.CodeInvalidTransition))
	}
}

func TestListPendingDefaultsToActionableStatuses(t *testing.T) {
	repo := newFakeRepo()
	seedPending(repo, domain.StatusPending)
	seedPending(repo, domain.StatusUnderReview)
	seedPending(repo, domain.StatusPendingPayment)
	seedPending(repo, domain.StatusConfirmed)
	seedPending(repo, domain.StatusCancelled)

	uc := NewListPending(repo)

	list, err := uc.Execute(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	for _, ap := range list {
		assert.NotEqual(t, string(domain.StatusConfirmed), ap.Status)
		assert.False(t, domain.IsTerminal(domain.Status(ap.Status)))
	}
}

func TestListPendingExplicitFilter(t *testing.T) {
	repo := newFakeRepo()
	seedPending(repo, domain.StatusPending)
	seedPending(repo, domain.StatusPendingPayment)

	uc := NewListPending(repo)

	list, err := uc.Execute(context.Background(), 1, []string{string(domain.StatusPendingPayment)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, string(domain.StatusPendingPayment), list[0].Status)

	_, err = uc.Execute(context.Background(), 1, []string{"scheduled"})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}
