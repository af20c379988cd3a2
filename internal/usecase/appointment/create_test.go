package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

func seedService(repo *fakeRepo) models.Service {
	return repo.addService(models.Service{
		ID:          1,
		BranchID:    1,
		Name:        "Corte clásico",
		DurationMin: 30,
		Price:       25.0,
		Active:      true,
	})
}

// futureSlot devolve data/hora bem além da antecedência mínima.
func futureSlot(days int) (string, string) {
	at := timezone.NowIn("America/Lima").AddDate(0, 0, days)
	return at.Format("2006-01-02"), "15:00"
}

func baseInput(days int) CreateInput {
	date, hour := futureSlot(days)
	return CreateInput{
		BranchID:    1,
		BarberID:    2,
		ClientName:  "Pedro",
		ClientPhone: "987654321",
		ServiceIDs:  []uint{1},
		Date:        date,
		Time:        hour,
	}
}

func TestCreateWithVoucherStartsInPendingPayment(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	in := baseInput(7)
	in.PaymentMethod = models.PaymentYape
	in.VoucherNumber = "OP-123"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingPayment), ap.Status)
	assert.Equal(t, 30, ap.DurationMin)
	assert.Equal(t, 25.0, ap.TotalPrice)
	assert.Equal(t, "OP-123", ap.VoucherNumber)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, ap.StartTime.Add(30*time.Minute), ap.EndTime)
}

func TestCreateWithoutVoucherStartsInPending(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	in := baseInput(7)
	in.PaymentMethod = models.PaymentCash

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
}

func TestCreateNonCashWithoutVoucherIsRefused(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	in := baseInput(7)
	in.PaymentMethod = models.PaymentPlin

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	assert.Empty(t, repo.appointments)
}

func TestCreateRefusesBlacklistedClient(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	repo.addClient(models.Client{
		BranchID:    1,
		Name:        "Pedro",
		Phone:       "987654321",
		Blacklisted: true,
	})
	uc := NewCreate(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), baseInput(7))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeClientBlacklisted))
	assert.Empty(t, repo.appointments)
}

func TestCreateRefusesUnwelcomeClient(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	repo.addClient(models.Client{
		BranchID:    1,
		Name:        "Pedro",
		Phone:       "987654321",
		IsUnwelcome: true,
	})
	uc := NewCreate(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), baseInput(7))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeClientUnwelcome))
}

func TestCreateRefusesPastSlot(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	in := baseInput(-1)
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateRefusesUnknownService(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	in := baseInput(7)
	in.ServiceIDs = []uint{1, 42}

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateDetectsTimeConflict(t *testing.T) {
	repo := newFakeRepo()
	seedService(repo)
	uc := NewCreate(repo, newTestDispatcher())

	first, err := uc.Execute(context.Background(), baseInput(7))
	require.NoError(t, err)

	// Mesmo barbeiro, mesmo horário.
	in := baseInput(7)
	in.ClientPhone = "911222333"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeConflict))

	// Horário liberado após cancelamento.
	cancelUC := NewCancel(repo, newTestDispatcher())
	_, err = cancelUC.Execute(context.Background(), barberActor(), first.ID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}
