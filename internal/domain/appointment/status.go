package appointment

import "github.com/BruksfildServices01/barber-chain/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending        Status = "pending"
	StatusUnderReview    Status = "under_review"
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusRejected       Status = "rejected"
)

// transitions é a única fonte de verdade para mudanças de status.
// Qualquer transição fora desta tabela falha com invalid_transition.
var transitions = map[Status][]Status{
	StatusPending:        {StatusUnderReview, StatusConfirmed, StatusRejected, StatusCancelled},
	StatusUnderReview:    {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCompleted, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
	StatusRejected:       {},
}

func Valid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// InitialStatus define o status de criação: com voucher anexado o
// agendamento nasce aguardando verificação de pagamento.
func InitialStatus(hasVoucher bool) Status {
	if hasVoucher {
		return StatusPendingPayment
	}
	return StatusPending
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// CanReview cobre o fluxo de aprovação (pending / under_review)
func CanReview(current Status) error {
	if current != StatusPending && current != StatusUnderReview {
		return httperr.ErrBusiness(httperr.CodeNotAwaitingApproval)
	}
	return nil
}

// CanResolvePayment cobre o fluxo de verificação de pagamento
func CanResolvePayment(current Status) error {
	if current != StatusPendingPayment {
		return httperr.ErrBusiness(httperr.CodeNotInPendingPayment)
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}
