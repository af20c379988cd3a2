package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
)

func newAppointment(status Status) *models.Appointment {
	return &models.Appointment{
		ID:     1,
		Status: string(status),
	}
}

func TestOpenReview(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusPending)
	require.NoError(t, OpenReview(ap, now))
	assert.Equal(t, string(StatusUnderReview), ap.Status)

	ap = newAppointment(StatusConfirmed)
	err := OpenReview(ap, now)
	require.Error(t, err)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestApprove(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusPending, StatusUnderReview} {
		ap := newAppointment(from)
		require.NoError(t, Approve(ap, "admin1", "ok", now))

		assert.Equal(t, string(StatusConfirmed), ap.Status)
		assert.Equal(t, "admin1", ap.ReviewedBy)
		require.NotNil(t, ap.ReviewedAt)
		assert.Equal(t, now, *ap.ReviewedAt)
		assert.Equal(t, "ok", ap.ReviewNotes)
	}

	ap := newAppointment(StatusPendingPayment)
	err := Approve(ap, "admin1", "", now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotAwaitingApproval))
	assert.Equal(t, string(StatusPendingPayment), ap.Status)
}

func TestReject(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusUnderReview)
	require.NoError(t, Reject(ap, "admin1", ReasonScheduleConflict, "", now))

	assert.Equal(t, string(StatusRejected), ap.Status)
	assert.Equal(t, "admin1", ap.ReviewedBy)
	assert.Equal(t, string(ReasonScheduleConflict), ap.RejectionReason)

	// Motivo fora da enumeração: registro intacto.
	ap = newAppointment(StatusPending)
	err := Reject(ap, "admin1", RejectionReason("bad_mood"), "", now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRejectionReason))
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Empty(t, ap.ReviewedBy)

	// Agendamento já confirmado não volta para rejeitado.
	ap = newAppointment(StatusConfirmed)
	err = Reject(ap, "admin1", ReasonScheduleConflict, "", now)
	require.Error(t, err)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestApprovePayment(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusPendingPayment)
	changed, err := ApprovePayment(ap, "admin1", now)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.True(t, ap.PaymentVerified)
	assert.Equal(t, "admin1", ap.PaymentVerifiedBy)
	require.NotNil(t, ap.PaymentVerifiedAt)

	firstAt := *ap.PaymentVerifiedAt

	// Idempotente: segunda aprovação não reescreve os metadados.
	changed, err = ApprovePayment(ap, "admin2", now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "admin1", ap.PaymentVerifiedBy)
	assert.Equal(t, firstAt, *ap.PaymentVerifiedAt)

	ap = newAppointment(StatusPending)
	_, err = ApprovePayment(ap, "admin1", now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotInPendingPayment))
}

func TestRejectPayment(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusPendingPayment)
	require.NoError(t, RejectPayment(ap, "voucher falso", "admin1", now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.False(t, ap.PaymentVerified)
	assert.Equal(t, "voucher falso", ap.PaymentRejectedReason)
	assert.Equal(t, "admin1", ap.PaymentVerifiedBy)
	require.NotNil(t, ap.CancelledAt)

	ap = newAppointment(StatusConfirmed)
	err := RejectPayment(ap, "x", "admin1", now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotInPendingPayment))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestCancel(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusPending, StatusUnderReview, StatusPendingPayment, StatusConfirmed} {
		ap := newAppointment(from)
		require.NoError(t, Cancel(ap, now), string(from))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
	}

	for _, from := range []Status{StatusCompleted, StatusCancelled, StatusRejected} {
		ap := newAppointment(from)
		err := Cancel(ap, now)
		require.Error(t, err, string(from))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
		assert.Equal(t, string(from), ap.Status)
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := newAppointment(StatusConfirmed)
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	for _, from := range []Status{StatusPending, StatusUnderReview, StatusPendingPayment, StatusCompleted, StatusCancelled, StatusRejected} {
		ap := newAppointment(from)
		err := Complete(ap, now)
		require.Error(t, err, string(from))
		assert.Equal(t, string(from), ap.Status)
	}
}
