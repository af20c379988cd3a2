package httperr

import "errors"

// Códigos de negócio do ciclo de vida de agendamentos.
const (
	CodeInvalidTransition      = "invalid_transition"
	CodeNotInPendingPayment    = "not_in_pending_payment"
	CodeNotAwaitingApproval    = "not_awaiting_approval"
	CodeForbidden              = "forbidden"
	CodeValidation             = "validation_error"
	CodeInvalidRejectionReason = "invalid_rejection_reason"
	CodeAppointmentNotFound    = "appointment_not_found"
	CodeClientNotFound         = "client_not_found"
	CodeClientBlacklisted      = "client_blacklisted"
	CodeClientUnwelcome        = "client_unwelcome"
	CodeTimeConflict           = "time_conflict"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
