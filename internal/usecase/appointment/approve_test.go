package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
)

func seedPending(repo *fakeRepo, status domain.Status) models.Appointment {
	client := repo.addClient(models.Client{BranchID: 1, Name: "Luis", Phone: "988777666"})
	return repo.addAppointment(models.Appointment{
		BranchID:      1,
		ClientID:      client.ID,
		Status:        string(status),
		PaymentMethod: models.PaymentCash,
	})
}

func TestApproveUseCase(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusUnderReview)
	uc := NewApprove(repo, newTestDispatcher())

	result, err := uc.Execute(context.Background(), moderator(), ap.ID, "dados conferidos")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), result.Status)
	assert.Equal(t, "admin1", result.ReviewedBy)
	require.NotNil(t, result.ReviewedAt)
	assert.Equal(t, "dados conferidos", result.ReviewNotes)

	assert.Equal(t, string(domain.StatusConfirmed), repo.appointments[ap.ID].Status)
}

func TestApproveDirectFromPending(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusPending)
	uc := NewApprove(repo, newTestDispatcher())

	result, err := uc.Execute(context.Background(), moderator(), ap.ID, "")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), result.Status)
}

func TestApproveForbiddenForBarber(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusUnderReview)
	uc := NewApprove(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), barberActor(), ap.ID, "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	assert.Equal(t, string(domain.StatusUnderReview), repo.appointments[ap.ID].Status)
}

func TestApproveAlreadyConfirmed(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusConfirmed)
	uc := NewApprove(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), moderator(), ap.ID, "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotAwaitingApproval))
	assert.Equal(t, string(domain.StatusConfirmed), repo.appointments[ap.ID].Status)
}

func TestApproveNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewApprove(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), moderator(), 999, "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestRejectUseCase(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusUnderReview)
	uc := NewReject(repo, newTestDispatcher())

	result, err := uc.Execute(
		context.Background(), moderator(), ap.ID,
		domain.ReasonStaffUnavailable, "barbeiro de licença",
	)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRejected), result.Status)
	assert.Equal(t, "admin1", result.ReviewedBy)
	assert.Equal(t, string(domain.ReasonStaffUnavailable), result.RejectionReason)
	assert.Equal(t, "barbeiro de licença", result.ReviewNotes)
}

func TestRejectInvalidReason(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusUnderReview)
	uc := NewReject(repo, newTestDispatcher())

	_, err := uc.Execute(
		context.Background(), moderator(), ap.ID,
		domain.RejectionReason("mal_humor"), "",
	)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRejectionReason))
	assert.Equal(t, string(domain.StatusUnderReview), repo.appointments[ap.ID].Status)
}

func TestRejectAfterConfirmationIsRefused(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusConfirmed)
	uc := NewReject(repo, newTestDispatcher())

	_, err := uc.Execute(
		context.Background(), moderator(), ap.ID,
		domain.ReasonScheduleConflict, "",
	)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotAwaitingApproval))

	// Registro intacto: confirmado não regride.
	got := repo.appointments[ap.ID]
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Empty(t, got.RejectionReason)
}

func TestOpenReviewUseCase(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo, domain.StatusPending)
	uc := NewOpenReview(repo, newTestDispatcher())

	result, err := uc.Execute(context.Background(), moderator(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUnderReview), result.Status)

	// Reabrir revisão de quem já está em revisão não é transição válida.
	_, err = uc.Execute(context.Background(), moderator(), ap.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}
