package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-chain/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Cada ação valida a transição antes de tocar no registro: se a guarda
// falhar, o agendamento permanece intacto.

// OpenReview move um agendamento pendente para inspeção.
func OpenReview(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusUnderReview); err != nil {
		return err
	}

	ap.Status = string(StatusUnderReview)
	return nil
}

// Approve confirma um agendamento via fluxo de aprovação.
func Approve(ap *models.Appointment, reviewedBy string, notes string, now time.Time) error {
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ReviewedBy = reviewedBy
	ap.ReviewedAt = &now
	ap.ReviewNotes = notes
	return nil
}

// Reject recusa um agendamento via fluxo de aprovação.
func Reject(ap *models.Appointment, reviewedBy string, reason RejectionReason, notes string, now time.Time) error {
	if err := ValidRejectionReason(reason); err != nil {
		return err
	}
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.ReviewedBy = reviewedBy
	ap.ReviewedAt = &now
	ap.ReviewNotes = notes
	ap.RejectionReason = string(reason)
	return nil
}

// ApprovePayment confirma um agendamento aguardando verificação de voucher.
// Reaprovar um agendamento já confirmado e verificado é no-op: a verificação
// pode ser repetida com segurança (retries de rede).
func ApprovePayment(ap *models.Appointment, verifiedBy string, now time.Time) (changed bool, err error) {
	if Status(ap.Status) == StatusConfirmed && ap.PaymentVerified {
		return false, nil
	}
	if err := CanResolvePayment(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusConfirmed)
	ap.PaymentVerified = true
	ap.PaymentVerifiedAt = &now
	ap.PaymentVerifiedBy = verifiedBy
	return true, nil
}

// RejectPayment cancela um agendamento com voucher recusado.
func RejectPayment(ap *models.Appointment, reason string, verifiedBy string, now time.Time) error {
	if err := CanResolvePayment(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.PaymentVerified = false
	ap.PaymentVerifiedAt = &now
	ap.PaymentVerifiedBy = verifiedBy
	ap.PaymentRejectedReason = reason
	ap.CancelledAt = &now
	return nil
}

// Cancel encerra qualquer agendamento não-terminal.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete marca um agendamento confirmado como atendido.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
