package security

import (
	"time"

	"github.com/BruksfildServices01/barber-chain/internal/models"
)

// DefaultBlacklistThreshold reproduz a política em produção: um único
// voucher falso já coloca o cliente na blacklist. O valor é deliberadamente
// uma constante nomeada e configurável (BLACKLIST_THRESHOLD) porque mudar
// este número muda o comportamento do sistema inteiro.
const DefaultBlacklistThreshold = 1

// Evidence é o pacote de evidência capturado junto com a rejeição.
type Evidence struct {
	AppointmentID *uint
	VoucherNumber string
	Amount        float64
	PaymentMethod string
	VerifiedBy    string
}

// Ledger acumula sinal de fraude por cliente e decide blacklist.
// As mutações são monotônicas: contador e blacklist nunca regridem aqui;
// somente Clear (ação administrativa explícita) zera os flags.
type Ledger struct {
	threshold int
}

func NewLedger(threshold int) *Ledger {
	if threshold <= 0 {
		threshold = DefaultBlacklistThreshold
	}
	return &Ledger{threshold: threshold}
}

func (l *Ledger) Threshold() int {
	return l.threshold
}

// FlagFalseVoucher registra um voucher falso contra o cliente e devolve a
// linha de auditoria correspondente. O chamador persiste cliente e flag na
// mesma transação do cancelamento do agendamento.
func (l *Ledger) FlagFalseVoucher(client *models.Client, reason string, ev Evidence, now time.Time) *models.VoucherFlag {
	client.FalseVouchersCount++
	client.IsFlagged = true
	client.LastRejectionDate = &now

	if client.FalseVouchersCount >= l.threshold {
		client.Blacklisted = true
	}

	return &models.VoucherFlag{
		ClientID:      client.ID,
		AppointmentID: ev.AppointmentID,
		Reason:        reason,
		VoucherNumber: ev.VoucherNumber,
		Amount:        ev.Amount,
		PaymentMethod: ev.PaymentMethod,
		FlaggedBy:     ev.VerifiedBy,
	}
}

// Clear zera o ledger do cliente. Operação administrativa manual,
// independente do fluxo automático e do status de qualquer agendamento.
func (l *Ledger) Clear(client *models.Client) {
	client.IsFlagged = false
	client.FalseVouchersCount = 0
	client.Blacklisted = false
	client.LastRejectionDate = nil
}

// MarkUnwelcome seta o flag manual, que não deriva do ledger de fraude.
func MarkUnwelcome(client *models.Client, reason string, now time.Time) {
	client.IsUnwelcome = true
	client.UnwelcomeReason = reason
	client.UnwelcomeDate = &now
}

func ClearUnwelcome(client *models.Client) {
	client.IsUnwelcome = false
	client.UnwelcomeReason = ""
	client.UnwelcomeDate = nil
}
