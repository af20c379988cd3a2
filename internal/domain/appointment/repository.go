package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-chain/internal/models"
)

type Repository interface {
	// InTx executa fn dentro de uma transação; o Repository recebido
	// por fn enxerga apenas a transação. Erro de fn → rollback.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Branch --------
	GetBranchByID(
		ctx context.Context,
		id uint,
	) (*models.Branch, error)

	// -------- Service --------
	GetServices(
		ctx context.Context,
		branchID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		branchID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	GetClientByID(
		ctx context.Context,
		clientID uint,
	) (*models.Client, error)

	// GetClientForUpdate trava a linha do cliente dentro da transação.
	GetClientForUpdate(
		ctx context.Context,
		clientID uint,
	) (*models.Client, error)

	SaveClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
		branchID uint,
	) (*models.Appointment, error)

	// GetAppointmentForUpdate trava a linha do agendamento dentro da
	// transação: transições concorrentes serializam aqui.
	GetAppointmentForUpdate(
		ctx context.Context,
		appointmentID uint,
		branchID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Fraud ledger --------
	CreateVoucherFlag(
		ctx context.Context,
		flag *models.VoucherFlag,
	) error

	// -------- Dashboards --------
	ListByStatus(
		ctx context.Context,
		branchID uint,
		statuses []string,
	) ([]models.Appointment, error)
}
