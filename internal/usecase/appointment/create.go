package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
	"github.com/BruksfildServices01/barber-chain/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	BranchID uint
	BarberID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceIDs []uint

	Date string
	Time string

	PaymentMethod string
	VoucherNumber string
	VoucherURL    string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cria o agendamento. Com voucher anexado nasce em
// pending_payment (fluxo de verificação); sem voucher nasce em pending
// (fluxo de aprovação). Os dois caminhos são alternativos, nunca
// sequenciais.
func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Filial
	// --------------------------------------------------
	branch, err := uc.repo.GetBranchByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Data / hora no timezone da filial
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(branch.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 3. Antecedência mínima
	// --------------------------------------------------
	minAdvance := branch.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(branch.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 4. Voucher obrigatório para método não-cash
	// --------------------------------------------------
	hasVoucher := in.VoucherNumber != "" || in.VoucherURL != ""
	if in.PaymentMethod != "" && in.PaymentMethod != models.PaymentCash && !hasVoucher {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 5. Serviços → duração e preço total
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	services, err := uc.repo.GetServices(ctx, in.BranchID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	durationMin := 0
	totalPrice := 0.0
	for _, svc := range services {
		durationMin += svc.DurationMin
		totalPrice += svc.Price
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)

	// --------------------------------------------------
	// 6. Cliente (get or create) + bloqueios
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BranchID,
		strings.TrimSpace(in.ClientName),
		strings.TrimSpace(in.ClientPhone),
		strings.TrimSpace(in.ClientEmail),
	)
	if err != nil {
		return nil, err
	}

	if client.Blacklisted {
		return nil, httperr.ErrBusiness(httperr.CodeClientBlacklisted)
	}
	if client.IsUnwelcome {
		return nil, httperr.ErrBusiness(httperr.CodeClientUnwelcome)
	}

	// --------------------------------------------------
	// 7. Conflito de horário + criação na mesma transação
	// --------------------------------------------------
	ap := &models.Appointment{
		BranchID:    in.BranchID,
		BarberID:    in.BarberID,
		ClientID:    client.ID,
		Services:    services,
		StartTime:   start,
		EndTime:     end,
		DurationMin: durationMin,
		TotalPrice:  totalPrice,
		Status:      string(domain.InitialStatus(hasVoucher)),

		PaymentMethod: in.PaymentMethod,
		VoucherNumber: in.VoucherNumber,
		VoucherURL:    in.VoucherURL,

		Notes: in.Notes,
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, in.BarberID, start, end); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BranchID: in.BranchID,
		UserID:   &in.BarberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
